package main

import "time"

type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	PushGatewayURL    string        `env:"PUSH_GATEWAY_URL,required=true"`
	PushServerKey     string        `env:"PUSH_SERVER_KEY,required=true"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=5s"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	StoreGCInterval   time.Duration `env:"STORE_GC_INTERVAL,default=5m"`
}
