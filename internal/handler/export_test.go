package handler

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestExportCSV(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 12.34, "description": "Groceries", "category": "food", "date": "2025-06-10",
	})
	createTransaction(t, r, token, gin.H{
		"type": "income", "amount": 500.0, "description": "Paycheck", "category": "salary", "date": "2025-06-12",
	})

	w := doJSON(t, r, "GET", "/api/export/csv", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export csv status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	// 表头 + 两条记录
	if len(records) != 3 {
		t.Fatalf("csv rows = %d, want 3", len(records))
	}
	if records[0][0] != "Type" || records[0][4] != "Date" {
		t.Errorf("csv header = %v", records[0])
	}
	// 按日期倒序：最新的 Paycheck 在前
	if records[1][0] != "income" || records[1][2] != "500.00" {
		t.Errorf("first data row = %v, want income 500.00", records[1])
	}
	if records[2][1] != "food" || records[2][4] != "2025-06-10" {
		t.Errorf("second data row = %v, want food 2025-06-10", records[2])
	}
}

func TestExportRequiresAuth(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "GET", "/api/export/csv", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("export without token status = %d, want 401", w.Code)
	}
}

func TestAuditLogListing(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	// 先产生两条受审计的操作
	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 10.0, "description": "Coffee", "category": "food", "date": "2025-06-10",
	})
	doJSON(t, r, "GET", "/api/me", token, nil)

	w := doJSON(t, r, "GET", "/api/logs", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logs status = %d, body %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if total := data["total"].(float64); total < 2 {
		t.Errorf("logs total = %v, want at least 2", total)
	}

	items := data["items"].([]interface{})
	if len(items) == 0 {
		t.Fatal("logs items is empty")
	}
	entry := items[0].(map[string]interface{})
	if entry["method"] == "" || entry["path"] == "" {
		t.Errorf("log entry missing method/path: %v", entry)
	}
}
