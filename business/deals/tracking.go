package deals

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"agentMarket/domain"

	"github.com/pobyzaarif/goshortcute"
)

// EventRepository appends sponsored impression/click records.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.DealEvent) error
}

// ImpressionStore remembers which (service, placement, view) triples already
// produced an impression within the current display cycle. MarkSeen reports
// true exactly once per key and TTL window.
type ImpressionStore interface {
	MarkSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

func impressionKey(serviceID uint64, placement, viewID string) string {
	return fmt.Sprintf("deal:seen:%s:%s:%d", placement, viewID, serviceID)
}

// ClickToken is the decoded payload of a sponsored click-through token. The
// redirect endpoint attributes clicks from the token instead of trusting
// client-supplied ids.
type ClickToken struct {
	ServiceID uint64
	Placement string
	IssuedAt  time.Time
}

func EncodeClickToken(t ClickToken, key string) (string, error) {
	payload := fmt.Sprintf("%d|%s|%d", t.ServiceID, t.Placement, t.IssuedAt.Unix())

	encrypted, err := goshortcute.AESCBCEncrypt([]byte(payload), []byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt click token: %w", err)
	}

	return goshortcute.StringtoBase64Encode(encrypted), nil
}

func DecodeClickToken(token, key string) (ClickToken, error) {
	raw := goshortcute.StringtoBase64Decode(token)

	payload, err := goshortcute.AESCBCDecrypt([]byte(raw), []byte(key))
	if err != nil {
		return ClickToken{}, errors.New("invalid click token")
	}

	parts := strings.SplitN(payload, "|", 3)
	if len(parts) != 3 {
		return ClickToken{}, errors.New("malformed click token")
	}

	serviceID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return ClickToken{}, errors.New("malformed click token")
	}

	issuedAt, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return ClickToken{}, errors.New("malformed click token")
	}

	return ClickToken{
		ServiceID: serviceID,
		Placement: parts[1],
		IssuedAt:  time.Unix(issuedAt, 0),
	}, nil
}
