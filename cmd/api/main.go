package main

import (
	"context"
	"flag"
	"log"

	"github.com/novalis-io/identity/internal/api"
	"github.com/novalis-io/identity/internal/config"
	"github.com/novalis-io/identity/internal/mailer"
	"github.com/novalis-io/identity/internal/store"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "app.yml", "Path to configuration file")
	flag.Parse()

	log.Printf("Starting identity service v%s with config: %s", version, *configPath)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	st, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close(ctx)

	var send mailer.SendFunc
	if cfg.SMTP.Host != "" {
		send = mailer.SMTPSendFunc(cfg.SMTP)
	} else {
		log.Println("No SMTP host configured, logging outgoing mail instead")
		send = mailer.LogSendFunc()
	}

	a := api.NewApi(*cfg, st, mailer.NewMailer(send))
	a.Serve()
}
