package myvault

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "shopfront:session:"
	defaultTTL = 12 * time.Hour
)

type redisVault struct {
	client *redis.Client
}

func newRedisVault(addr string) (Vault, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &redisVault{
			client: client,
		}, func() {
			client.Close()
		}, nil
}

func (v *redisVault) Put(c context.Context, uid string, token Token) error {
	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("error marshalling token %s: %s", uid, err)
	}

	ttl := defaultTTL
	if token.ExpiresIn > 0 {
		ttl = time.Duration(token.ExpiresIn) * time.Second
	}

	err = v.client.Set(c, keyPrefix+uid, payload, ttl).Err()
	if err != nil {
		return fmt.Errorf("error storing token %s: %s", uid, err)
	}

	return nil
}

func (v *redisVault) Get(c context.Context, uid string) (Token, bool, error) {
	payload, err := v.client.Get(c, keyPrefix+uid).Bytes()
	if err == redis.Nil {
		return Token{}, false, nil
	}
	if err != nil {
		return Token{}, false, fmt.Errorf("error fetching token %s: %s", uid, err)
	}

	token := Token{}
	err = json.Unmarshal(payload, &token)
	if err != nil {
		return Token{}, false, fmt.Errorf("error unmarshalling token %s: %s", uid, err)
	}

	return token, true, nil
}

func (v *redisVault) Delete(c context.Context, uid string) error {
	err := v.client.Del(c, keyPrefix+uid).Err()
	if err != nil {
		return fmt.Errorf("error deleting token %s: %s", uid, err)
	}

	return nil
}
