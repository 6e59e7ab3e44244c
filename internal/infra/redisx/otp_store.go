package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// otp:pwreset:{email} -> 6-digit code
	keyPasswordResetOTP = "otp:pwreset:%s"
)

// TTLPasswordResetOTP bounds how long a reset code stays valid.
var TTLPasswordResetOTP = 5 * time.Minute

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// OTPStore keeps reset codes in Redis so they survive process restarts
// and are shared across workers. Expiry is enforced by the key TTL.
type OTPStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOTPStore(rdb *redis.Client) *OTPStore {
	return &OTPStore{rdb: rdb, ttl: TTLPasswordResetOTP}
}

func (s *OTPStore) Put(ctx context.Context, email string, code string) error {
	key := fmt.Sprintf(keyPasswordResetOTP, email)
	return s.rdb.Set(ctx, key, code, s.ttl).Err()
}

// Get returns ("", nil) when no live code exists for the email.
func (s *OTPStore) Get(ctx context.Context, email string) (string, error) {
	key := fmt.Sprintf(keyPasswordResetOTP, email)

	code, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *OTPStore) Delete(ctx context.Context, email string) error {
	key := fmt.Sprintf(keyPasswordResetOTP, email)
	return s.rdb.Del(ctx, key).Err()
}
