package main

import (
	"context"
	"log"

	"github.com/m3rciful/demobot/bot"
	"github.com/m3rciful/demobot/bot/catalog"
	"github.com/m3rciful/demobot/core/bootstrap"
	"github.com/m3rciful/demobot/core/cmd"
	coreconfig "github.com/m3rciful/demobot/core/config"
)

func main() {
	err := cmd.Run(cmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config/showcasebot.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			cfg, err := coreconfig.Load(path)
			if err != nil {
				return nil, err
			}
			return &bot.Config{Core: cfg}, nil
		},
		Bootstrap: func(carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			app, err := bot.New(bot.Options{
				Name:    "Showcase Demo Bot",
				Config:  carrier.CoreConfig(),
				Catalog: catalog.Showcase(),
			})
			if err != nil {
				return nil, err
			}
			if err := bootstrap.Run(context.Background(), bootstrap.Options{
				Config:  carrier.CoreConfig(),
				Warmups: app.Warmups(),
			}); err != nil {
				return nil, err
			}
			return app, nil
		},
	})
	if err != nil {
		log.Fatalf("showcasebot: %v", err)
	}
}
