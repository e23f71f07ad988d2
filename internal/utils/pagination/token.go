package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bizledger/internal/apperrors"
)

// EncodeCursor creates a base64 encoded token pointing after the entry with sequence seq.
// The business id is part of the token so it cannot be replayed against another business.
func EncodeCursor(businessID string, seq int64) string {
	tokenStr := fmt.Sprintf("%s|%d", businessID, seq)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor for the same business.
// Malformed tokens yield an error wrapping apperrors.ErrValidation.
func DecodeCursor(token string, businessID string) (int64, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid pagination token format (base64 decode): %v", apperrors.ErrValidation, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}
	if parts[0] != businessID {
		return 0, fmt.Errorf("%w: pagination token belongs to another business", apperrors.ErrValidation)
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("%w: invalid pagination token format (sequence)", apperrors.ErrValidation)
	}
	return seq, nil
}
