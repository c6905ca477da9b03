package server

import (
	"net/http"
	"time"

	"github.com/iwvelando/finance-calculator/pkg/calculator"
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/julienschmidt/httprouter"
)

type apiResponse struct {
	Result interface{} `json:"result,omitempty"`
	Error  *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Kind    calculator.Kind `json:"kind"`
	Message string          `json:"message"`
}

func (h *handler) evaluate(r *http.Request, fields calculator.Fields, op string) (calculator.ExpressionResult, error) {
	start := time.Now()
	req := calculator.NewExpressionRequest(fields)
	result, err := cached(r.Context(), h, "standard", []string{req.Expression}, req.Evaluate)
	h.logOutcome(r, op, "standard", start, err)
	return result, err
}

func (h *handler) computeInterest(r *http.Request, fields calculator.Fields, op string) (calculator.InterestResult, error) {
	start := time.Now()
	req := calculator.NewInterestRequest(fields)
	result, err := cached(r.Context(), h, "interest", []string{req.Principal, req.Rate, req.Time}, req.Compute)
	h.logOutcome(r, op, "interest", start, err)
	return result, err
}

func (h *handler) computeInstallment(r *http.Request, fields calculator.Fields, op string) (calculator.InstallmentResult, error) {
	start := time.Now()
	req := calculator.NewInstallmentRequest(fields)
	result, err := cached(r.Context(), h, "installment", []string{req.Principal, req.AnnualRate, req.Months}, req.Compute)
	h.logOutcome(r, op, "installment", start, err)
	return result, err
}

func (h *handler) handleStandardPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	const op = "server.handleStandardPage"
	fields, ok := h.readFields(w, r, op)
	if !ok {
		return
	}

	p := page{Title: "Standard Calculator", Path: "/standard/", Result: calculator.ExpressionResult{}}
	if r.Method == http.MethodPost {
		result, err := h.evaluate(r, fields, op)
		p.Result = result
		p.setError(err)
	}
	h.render(w, http.StatusOK, "standard", p)
}

func (h *handler) handleInterestPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	const op = "server.handleInterestPage"
	fields, ok := h.readFields(w, r, op)
	if !ok {
		return
	}

	p := page{Title: "Interest Calculator", Path: "/interest/", Result: calculator.InterestResult{}}
	if r.Method == http.MethodPost {
		result, err := h.computeInterest(r, fields, op)
		p.Result = result
		p.setError(err)
	}
	h.render(w, http.StatusOK, "interest", p)
}

func (h *handler) handleInstallmentPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	const op = "server.handleInstallmentPage"
	fields, ok := h.readFields(w, r, op)
	if !ok {
		return
	}

	p := page{
		Title:       "Installment Calculator",
		Path:        "/installment/",
		Result:      calculator.InstallmentResult{},
		ValidRates:  constants.InstallmentRates,
		ValidMonths: calculator.AllowedMonths(),
	}
	if r.Method == http.MethodPost {
		result, err := h.computeInstallment(r, fields, op)
		p.Result = result
		p.setError(err)
	}
	h.render(w, http.StatusOK, "installment", p)
}

func (h *handler) handleStandardAPI(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	const op = "server.handleStandardAPI"
	fields, ok := h.readFields(w, r, op)
	if !ok {
		return
	}
	result, err := h.evaluate(r, fields, op)
	h.writeOutcome(w, result, err)
}

func (h *handler) handleInterestAPI(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	const op = "server.handleInterestAPI"
	fields, ok := h.readFields(w, r, op)
	if !ok {
		return
	}
	result, err := h.computeInterest(r, fields, op)
	h.writeOutcome(w, result, err)
}

func (h *handler) handleInstallmentAPI(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	const op = "server.handleInstallmentAPI"
	fields, ok := h.readFields(w, r, op)
	if !ok {
		return
	}
	result, err := h.computeInstallment(r, fields, op)
	h.writeOutcome(w, result, err)
}

// writeOutcome answers 200 with the result, or 422 with the classified error
// and the echoed inputs.
func (h *handler) writeOutcome(w http.ResponseWriter, result interface{}, err error) {
	if err != nil {
		kind := calculator.KindOf(err)
		h.writeJSON(w, http.StatusUnprocessableEntity, apiResponse{
			Result: result,
			Error:  &apiError{Kind: kind, Message: kind.Message()},
		})
		return
	}
	h.writeJSON(w, http.StatusOK, apiResponse{Result: result})
}
