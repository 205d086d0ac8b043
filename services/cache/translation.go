package cache

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// TranslationCacheService memoizes finished translations so repeating the
// same text/language pair never costs a second upstream call.
type TranslationCacheService struct {
	store Store
}

// NewTranslationCacheService wraps a Store (count-bounded in production).
func NewTranslationCacheService(store Store) *TranslationCacheService {
	return &TranslationCacheService{
		store: store,
	}
}

// GetTranslation returns the cached translation for the text/language pair.
func (s *TranslationCacheService) GetTranslation(text, sourceLanguage, targetLanguage string) (string, bool) {
	return s.store.Get(s.translationKey(text, sourceLanguage, targetLanguage))
}

// SaveTranslation records a finished translation.
func (s *TranslationCacheService) SaveTranslation(text, sourceLanguage, targetLanguage, translated string) {
	s.store.Set(s.translationKey(text, sourceLanguage, targetLanguage), translated)
}

// Clear drops every cached translation.
func (s *TranslationCacheService) Clear() {
	s.store.Clear()
}

// Size returns how many translations are currently cached.
func (s *TranslationCacheService) Size() int {
	return s.store.Size()
}

// translationKey builds a deterministic key from the input text and language
// pair. The text is hashed so arbitrarily long inputs produce fixed-size keys.
func (s *TranslationCacheService) translationKey(text, sourceLanguage, targetLanguage string) string {
	h := sha256.New()
	h.Write([]byte(text))

	hashBase64 := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("translate:%s:%s:%s", sourceLanguage, targetLanguage, hashBase64)
}
