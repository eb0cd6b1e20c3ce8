package http

import (
	"net/http"

	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type PrintHandler struct {
	printUsecase usecase.PrintUC
	logger       logger.Logger
}

func NewPrintHandler(printUsecase usecase.PrintUC, logger logger.Logger) *PrintHandler {
	return &PrintHandler{printUsecase: printUsecase, logger: logger}
}

// print принимает JSON заказа и ставит чек в печать. Ответ всегда 202: ошибки разбора и
// печати только логируются, как и при вызове из браузера киоска.
func (p *PrintHandler) print(w http.ResponseWriter, r *http.Request) {
	const maxPayloadSize = 1 << 20

	content, err := readBody(w, r, maxPayloadSize)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	jobID := p.printUsecase.Print(r.Context(), content)

	WriteSuccess(w, http.StatusAccepted, printResponse{JobID: jobID})
}

func (p *PrintHandler) printerStatus(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, printerStatusResponse{Connected: p.printUsecase.IsConnected()})
}

func (p *PrintHandler) getPrintJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	info, err := p.printUsecase.GetPrintJob(r.Context(), id)
	if err != nil {
		p.logger.Warnf("get print job %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPrintJobResponse(info))
}
