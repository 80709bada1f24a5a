package orchestrators

import (
	"context"
	"testing"
)

func TestExecuteGetPaymentMethods_OnFileFirst(t *testing.T) {
	members := newMockMemberStore(demoStudent())
	payments := newMockPaymentStore()
	payments.onFile["M001"] = []string{"PayPal", "Check"}

	reply, err := ExecuteGetPaymentMethods(context.Background(),
		PaymentMethodsInput{Email: "john.doe@example.com"},
		PaymentMethodsDeps{MemberStore: members, PaymentStore: payments})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Your available payment methods: PayPal, Check, Card, ACH."
	if reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

func TestExecuteGetPaymentMethods_DefaultsWhenNoneOnFile(t *testing.T) {
	members := newMockMemberStore(demoStudent())
	payments := newMockPaymentStore()

	reply, err := ExecuteGetPaymentMethods(context.Background(),
		PaymentMethodsInput{Email: "john.doe@example.com"},
		PaymentMethodsDeps{MemberStore: members, PaymentStore: payments})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Your available payment methods: Card, ACH, PayPal."
	if reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

func TestExecuteGetPaymentMethods_NotFound(t *testing.T) {
	members := newMockMemberStore()
	payments := newMockPaymentStore()

	reply, err := ExecuteGetPaymentMethods(context.Background(),
		PaymentMethodsInput{Email: "nobody@example.com"},
		PaymentMethodsDeps{MemberStore: members, PaymentStore: payments})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "No member found with email: nobody@example.com" {
		t.Errorf("reply = %q", reply)
	}
}
