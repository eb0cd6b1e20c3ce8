package http

import (
	"net/http"

	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
)

type KioskHandler struct {
	kioskUsecase usecase.KioskUC
	soundUsecase usecase.SoundUC
	logger       logger.Logger
}

func NewKioskHandler(kioskUsecase usecase.KioskUC, soundUsecase usecase.SoundUC, logger logger.Logger) *KioskHandler {
	return &KioskHandler{kioskUsecase: kioskUsecase, soundUsecase: soundUsecase, logger: logger}
}

func (k *KioskHandler) playSound(w http.ResponseWriter, _ *http.Request) {
	k.soundUsecase.PlayNotificationSound()
	w.WriteHeader(http.StatusAccepted)
}

func (k *KioskHandler) config(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, toKioskConfigResponse(k.kioskUsecase.Config()))
}

// autofill отдаёт скрипт автозаполнения, если страница является формой входа. Иначе 204.
func (k *KioskHandler) autofill(w http.ResponseWriter, r *http.Request) {
	script, ok := k.kioskUsecase.AutofillScript(r.URL.Query().Get("url"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	k.logger.Debugf("Autofill script served for %s", r.URL.Query().Get("url"))
	WriteSuccess(w, http.StatusOK, autofillResponse{Script: script})
}
