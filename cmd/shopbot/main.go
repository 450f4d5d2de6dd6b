package main

import (
	"log"

	"shopbot/bot"
	"shopbot/core/bootstrap"
	corecmd "shopbot/core/cmd"
	coreconfig "shopbot/core/config"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return coreconfig.Load(path)
		},
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg := carrier.CoreConfig()
			res, err := bootstrap.Run(bootstrap.Options{Config: cfg})
			if err != nil {
				return nil, err
			}
			return bot.New(cfg, res.Catalog), nil
		},
	})
	if err != nil {
		log.Fatalf("shopbot: %v", err)
	}
}
