package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/pchavezmanzano/bonificacion-ief/config"
)

// Telegram caps photo messages; bigger renders go out as documents.
const maxSizePhoto = 150000

// NotifyCharts delivers the rendered chart files to the configured Telegram
// chat. Without credentials the notifier silently declines to run; delivery
// errors are logged and never fail the batch.
func NotifyCharts(cfg *config.Config, files []string) {
	if cfg.TgToken == "" || cfg.TgChatID == 0 || len(files) == 0 {
		return
	}

	api, err := tgbotapi.NewBotAPI(cfg.TgToken)
	if err != nil {
		log.Printf("Telegram no disponible: %v", err)
		return
	}

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			log.Printf("Error leyendo %s: %v", f, err)
			continue
		}
		pngFile := tgbotapi.FileBytes{
			Name:  filepath.Base(f),
			Bytes: data,
		}
		caption := fmt.Sprintf("Gráfico generado: %s", filepath.Base(f))

		var msg tgbotapi.Chattable
		if len(data) < maxSizePhoto {
			photo := tgbotapi.NewPhotoUpload(cfg.TgChatID, pngFile)
			photo.Caption = caption
			msg = photo
		} else {
			doc := tgbotapi.NewDocumentUpload(cfg.TgChatID, pngFile)
			doc.Caption = caption
			msg = doc
		}
		if _, err := api.Send(msg); err != nil {
			log.Printf("Error enviando %s: %v", f, err)
		}
	}
}
