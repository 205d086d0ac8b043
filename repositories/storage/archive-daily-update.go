package StorageRepository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/callmev1nc/SmartInvest/types"
)

// ArchiveDailyUpdate uploads the day's update as JSON under a predictable
// key: market/<risk-profile>/<YYYY-MM-DD>.json
func (r *Repository) ArchiveDailyUpdate(ctx context.Context, update types.MarketUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("market update could not be encoded: %w", err)
	}

	objectKey := fmt.Sprintf("market/%s/%s.json", update.RiskProfile, update.UpdateDate)

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("market update could not be archived: %w", err)
	}

	return nil
}
