package StorageRepository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Repository writes public JSON snapshots to a Cloudflare R2 bucket so the
// mobile clients can pull the day's market update from the edge without
// touching this API at all.
type Repository struct {
	client     *s3.Client
	bucketName string
}

func NewRepository(accessKeyID, accessKeySecret, bucketName, endpoint string) *Repository {
	s3Client := s3.New(s3.Options{
		Region: "auto",
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			accessKeySecret,
			"",
		)),
		BaseEndpoint: aws.String(endpoint),
	})

	return &Repository{
		client:     s3Client,
		bucketName: bucketName,
	}
}
