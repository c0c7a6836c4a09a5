package lead

import "errors"

var ErrInvalidClassification = errors.New("invalid lead classification")

// Classification is assigned exactly once at ingestion and never changes.
type Classification string

const (
	Gold   Classification = "Gold"
	Silver Classification = "Silver"
)

func (c Classification) String() string {
	return string(c)
}

func (c Classification) IsValid() bool {
	switch c {
	case Gold, Silver:
		return true
	default:
		return false
	}
}

func ParseClassification(s string) (Classification, error) {
	c := Classification(s)
	if !c.IsValid() {
		return "", ErrInvalidClassification
	}
	return c, nil
}
