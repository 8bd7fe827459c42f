package redis

import (
	"net"
	"strconv"

	"moodmate/be/biz/config"

	"github.com/redis/go-redis/v9"
)

func NewClient(conf config.RedisConf) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(conf.IP, strconv.Itoa(conf.Port)),
		Password: conf.Password,
		DB:       conf.DB,
	})
}
