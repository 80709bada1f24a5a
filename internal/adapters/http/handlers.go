package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"membuddy/internal/application/orchestrators"
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeReply writes the single-string assistant reply contract.
func writeReply(w http.ResponseWriter, reply string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"reply": reply})
}

// actionRequest is the common JSON body for assistant actions. Either
// Email (+ Text where relevant) or the legacy delimited Input is set.
type actionRequest struct {
	Email   string `json:"email"`
	Text    string `json:"text"`
	Input   string `json:"input"` // legacy "email|user_input" form
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// emailAndText resolves the structured fields, falling back to the legacy
// delimited form when only Input is present.
func (a actionRequest) emailAndText() (string, string) {
	if a.Email == "" && a.Input != "" {
		return orchestrators.ParseLegacyActionInput(a.Input)
	}
	return a.Email, a.Text
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/profile", handleGetProfile)
	mux.HandleFunc("/api/renewal-options", handleGetRenewalOptions)
	mux.HandleFunc("/api/payment-methods", handleGetPaymentMethods)
	mux.HandleFunc("/api/update-profile", handleUpdateProfile)
	mux.HandleFunc("/api/process-payment", handleProcessPayment)
	mux.HandleFunc("/api/feedback", handleCollectFeedback)
	mux.HandleFunc("/api/faq", handleAnswerFAQ)
	mux.HandleFunc("/api/perf", handlePerf)
	mux.HandleFunc("/console", handleConsole)
	mux.HandleFunc("/", handleConsoleIndex)
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req actionRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	email, _ := req.emailAndText()
	reply, err := orchestrators.ExecuteGetProfile(r.Context(),
		orchestrators.GetProfileInput{Email: email},
		orchestrators.GetProfileDeps{MemberStore: stores.MemberStore})
	if err != nil {
		internalError(w, err)
		return
	}
	writeReply(w, reply)
}

func handleGetRenewalOptions(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req actionRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	email, _ := req.emailAndText()
	reply, err := orchestrators.ExecuteGetRenewalOptions(r.Context(),
		orchestrators.RenewalOptionsInput{Email: email},
		orchestrators.RenewalOptionsDeps{MemberStore: stores.MemberStore})
	if err != nil {
		internalError(w, err)
		return
	}
	writeReply(w, reply)
}

func handleGetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req actionRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	email, _ := req.emailAndText()
	reply, err := orchestrators.ExecuteGetPaymentMethods(r.Context(),
		orchestrators.PaymentMethodsInput{Email: email},
		orchestrators.PaymentMethodsDeps{MemberStore: stores.MemberStore, PaymentStore: stores.PaymentStore})
	if err != nil {
		internalError(w, err)
		return
	}
	writeReply(w, reply)
}

func handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req actionRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	email, text := req.emailAndText()
	reply, err := orchestrators.ExecuteUpdateProfile(r.Context(),
		orchestrators.UpdateProfileInput{Email: email, Text: text},
		orchestrators.UpdateProfileDeps{MemberStore: stores.MemberStore})
	if err != nil {
		internalError(w, err)
		return
	}
	writeReply(w, reply)
}

func handleProcessPayment(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req actionRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	email, text := req.emailAndText()
	reply, err := orchestrators.ExecuteProcessPayment(r.Context(),
		orchestrators.ProcessPaymentInput{Email: email, Text: text},
		orchestrators.ProcessPaymentDeps{
			MemberStore:  stores.MemberStore,
			PaymentStore: stores.PaymentStore,
			EmailSender:  emailSender,
			Now:          timeNow,
			GenerateID:   generateID,
		})
	if err != nil {
		internalError(w, err)
		return
	}
	writeReply(w, reply)
}

func handleCollectFeedback(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req actionRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	reply, err := orchestrators.ExecuteCollectFeedback(r.Context(),
		orchestrators.CollectFeedbackInput{Email: req.Email, Rating: req.Rating, Comment: req.Comment},
		orchestrators.CollectFeedbackDeps{
			MemberStore:   stores.MemberStore,
			FeedbackStore: stores.FeedbackStore,
			Now:           timeNow,
			GenerateID:    generateID,
		})
	if err != nil {
		internalError(w, err)
		return
	}
	writeReply(w, reply)
}

func handleAnswerFAQ(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req struct {
		Question string `json:"question"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	reply, err := orchestrators.ExecuteAnswerFAQ(r.Context(),
		orchestrators.AnswerFAQInput{Question: req.Question},
		orchestrators.AnswerFAQDeps{FAQStore: stores.FAQStore})
	if err != nil {
		internalError(w, err)
		return
	}
	writeReply(w, reply)
}

func handlePerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	topN := 10
	if v := r.URL.Query().Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(perfCollector.MakeReport(topN))
}

// dispatchAction routes a console submission to the matching orchestrator.
func dispatchAction(ctx context.Context, action, email, text string, rating int) (string, error) {
	switch action {
	case "profile":
		return orchestrators.ExecuteGetProfile(ctx,
			orchestrators.GetProfileInput{Email: email},
			orchestrators.GetProfileDeps{MemberStore: stores.MemberStore})
	case "renewal":
		return orchestrators.ExecuteGetRenewalOptions(ctx,
			orchestrators.RenewalOptionsInput{Email: email},
			orchestrators.RenewalOptionsDeps{MemberStore: stores.MemberStore})
	case "methods":
		return orchestrators.ExecuteGetPaymentMethods(ctx,
			orchestrators.PaymentMethodsInput{Email: email},
			orchestrators.PaymentMethodsDeps{MemberStore: stores.MemberStore, PaymentStore: stores.PaymentStore})
	case "update":
		return orchestrators.ExecuteUpdateProfile(ctx,
			orchestrators.UpdateProfileInput{Email: email, Text: text},
			orchestrators.UpdateProfileDeps{MemberStore: stores.MemberStore})
	case "pay":
		return orchestrators.ExecuteProcessPayment(ctx,
			orchestrators.ProcessPaymentInput{Email: email, Text: text},
			orchestrators.ProcessPaymentDeps{
				MemberStore:  stores.MemberStore,
				PaymentStore: stores.PaymentStore,
				EmailSender:  emailSender,
				Now:          timeNow,
				GenerateID:   generateID,
			})
	case "feedback":
		return orchestrators.ExecuteCollectFeedback(ctx,
			orchestrators.CollectFeedbackInput{Email: email, Rating: rating, Comment: text},
			orchestrators.CollectFeedbackDeps{
				MemberStore:   stores.MemberStore,
				FeedbackStore: stores.FeedbackStore,
				Now:           timeNow,
				GenerateID:    generateID,
			})
	case "faq":
		return orchestrators.ExecuteAnswerFAQ(ctx,
			orchestrators.AnswerFAQInput{Question: text},
			orchestrators.AnswerFAQDeps{FAQStore: stores.FAQStore})
	}
	return "I don't know that action. Try: profile, renewal, methods, update, pay, feedback, faq.", nil
}

var knownActions = []string{"profile", "renewal", "methods", "update", "pay", "feedback", "faq"}

func isKnownAction(action string) bool {
	for _, a := range knownActions {
		if a == action {
			return true
		}
	}
	return false
}
