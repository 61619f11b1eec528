package kbmodel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carrot-e/killbill-client-go/codec"
	"github.com/carrot-e/killbill-client-go/httpclient"
	"github.com/carrot-e/killbill-client-go/registry"
	"github.com/carrot-e/killbill-client-go/resource"
)

func client(t *testing.T, srv *httptest.Server) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(httpclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestRegistration(t *testing.T) {
	for _, name := range []string{
		TypeAccount, TypeBundle, TypeSubscription, TypeInvoice,
		TypeInvoiceItem, TypePayment, TypePaymentMethod,
		TypeTagDefinition, TypeCustomField,
	} {
		if !registry.IsInstantiable(name) {
			t.Errorf("expected %s to be registered", name)
		}
	}

	d, _ := registry.Lookup(TypeInvoice)
	if hint, ok := d.HintFor("items"); !ok || hint != TypeInvoiceItem {
		t.Errorf("expected items hint %s, got %q ok=%v", TypeInvoiceItem, hint, ok)
	}
	d, _ = registry.Lookup(TypeBundle)
	if hint, ok := d.HintFor("subscriptions"); !ok || hint != TypeSubscription {
		t.Errorf("expected subscriptions hint %s, got %q ok=%v", TypeSubscription, hint, ok)
	}
	// auditLogs is reserved on every resource and decodes opaquely.
	d, _ = registry.Lookup(TypeAccount)
	if !d.HasProperty("auditLogs") {
		t.Error("expected auditLogs property on Account")
	}
	if _, ok := d.HintFor("auditLogs"); ok {
		t.Error("expected no hint for auditLogs")
	}
}

func TestLoadAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1.0/kb/accounts/a-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"accountId":"a-1","name":"Ada","currency":"USD","billCycleDay":14}`))
	}))
	defer srv.Close()

	acct, err := LoadAccount(context.Background(), client(t, srv), "a-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acct.AccountID != "a-1" || acct.Name != "Ada" || acct.BillCycleDay != 14 {
		t.Errorf("unexpected account: %+v", acct)
	}
	if acct.Client() == nil {
		t.Error("expected loaded account to carry the transport")
	}
}

func TestAccountSaveFollowsLocation(t *testing.T) {
	var posts, gets int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/1.0/kb/accounts":
			posts++
			w.Header().Set("Location", "/1.0/kb/accounts/a-9")
			w.WriteHeader(201)
		case r.Method == http.MethodGet && r.URL.Path == "/1.0/kb/accounts/a-9":
			gets++
			_, _ = w.Write([]byte(`{"accountId":"a-9","externalKey":"ext-9","name":"Nia"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := NewAccount(client(t, srv))
	a.ExternalKey = "ext-9"
	a.Name = "Nia"

	created, err := a.Save(context.Background(), &httpclient.Audit{CreatedBy: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts != 1 || gets != 1 {
		t.Errorf("expected 1 POST and 1 GET, got %d/%d", posts, gets)
	}
	if created == nil || created.AccountID != "a-9" {
		t.Errorf("unexpected created account: %+v", created)
	}
}

func TestAccountInvoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1.0/kb/accounts/a-1/invoices" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"invoiceId":"i-1","amount":10},{"invoiceId":"i-2","amount":5.5}]`))
	}))
	defer srv.Close()

	a := NewAccount(client(t, srv))
	a.AccountID = "a-1"

	invoices, err := a.Invoices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invoices) != 2 || invoices[1].InvoiceID != "i-2" {
		t.Errorf("unexpected invoices: %+v", invoices)
	}
}

func TestLoadInvoiceWithItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("withItems") != "true" {
			t.Errorf("expected withItems query, got %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"invoiceId":"i-7","amount":12.5,"items":[{"invoiceItemId":"ii-1","amount":10},{"invoiceItemId":"ii-2","amount":2.5}]}`))
	}))
	defer srv.Close()

	inv, err := LoadInvoice(context.Background(), client(t, srv), "i-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inv.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(inv.Items))
	}
	if total := inv.ItemsTotal(); total != 12.5 {
		t.Errorf("expected items total 12.5, got %v", total)
	}
}

func TestEncodeAccountExcludesTransport(t *testing.T) {
	srvClient, _ := httpclient.New(httpclient.Config{BaseURL: "https://killbill.example.com"})
	a := NewAccount(srvClient)
	a.AccountID = "a-1"
	a.Name = "Ada"
	a.AuditLogs = []any{map[string]any{"changeType": "INSERT"}}

	s, err := codec.Serialize(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"accountId":"a-1","auditLogs":[{"changeType":"INSERT"}],"name":"Ada"}`
	if s != want {
		t.Errorf("unexpected output:\n got %s\nwant %s", s, want)
	}
}

func TestDecodeBundleNestedSubscriptions(t *testing.T) {
	res, err := resource.DecodeBody(TypeBundle, &httpclient.Response{
		StatusCode: 200,
		Body:       []byte(`{"bundleId":"b-1","subscriptions":[{"subscriptionId":"s-1","productName":"Gold"}]}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := res.Resource.(*Bundle)
	if len(b.Subscriptions) != 1 || b.Subscriptions[0].ProductName != "Gold" {
		t.Errorf("unexpected bundle: %+v", b)
	}
}
