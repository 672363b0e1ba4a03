package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func createTransaction(t *testing.T, r *gin.Engine, token string, body gin.H) map[string]interface{} {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/transactions", token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("create transaction status = %d, body %s", w.Code, w.Body.String())
	}
	return decodeData(t, w)["transaction"].(map[string]interface{})
}

func listTransactions(t *testing.T, r *gin.Engine, token, query string) []interface{} {
	t.Helper()
	w := doJSON(t, r, "GET", "/api/transactions"+query, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list transactions status = %d, body %s", w.Code, w.Body.String())
	}
	return decodeData(t, w)["transactions"].([]interface{})
}

func TestTransactionCreateAndList(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	created := createTransaction(t, r, token, gin.H{
		"type":        "expense",
		"amount":      12.34,
		"description": "Grocery Store",
		"category":    "food",
		"date":        "2025-06-10",
	})
	if created["id"] == "" || created["id"] == nil {
		t.Fatal("created transaction has no id")
	}

	items := listTransactions(t, r, token, "")
	if len(items) != 1 {
		t.Fatalf("list returned %d items, want 1", len(items))
	}
	got := items[0].(map[string]interface{})
	if got["description"] != "Grocery Store" || got["category"] != "food" || got["amount"].(float64) != 12.34 {
		t.Errorf("listed transaction = %v, want created fields", got)
	}
}

func TestTransactionValidation(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	testCases := []struct {
		name string
		body gin.H
	}{
		{"bad type", gin.H{"type": "transfer", "amount": 1, "category": "food", "date": "2025-06-10"}},
		{"negative amount", gin.H{"type": "expense", "amount": -5, "category": "food", "date": "2025-06-10"}},
		{"unknown category", gin.H{"type": "expense", "amount": 1, "category": "groceries", "date": "2025-06-10"}},
		{"bad date", gin.H{"type": "expense", "amount": 1, "category": "food", "date": "junk"}},
		{"recurring without frequency", gin.H{"type": "expense", "amount": 1, "category": "food", "date": "2025-06-10", "is_recurring": true}},
	}

	for _, tc := range testCases {
		w := doJSON(t, r, "POST", "/api/transactions", token, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, w.Code)
		}
	}
}

func TestTransactionFilters(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 10, "description": "Grocery Store", "category": "food", "date": "2025-06-10",
	})
	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 20, "description": "Bus ticket", "category": "transport", "date": "2025-06-12",
	})
	createTransaction(t, r, token, gin.H{
		"type": "income", "amount": 500, "description": "Paycheck", "category": "salary", "date": "2025-05-01",
	})

	// 类别过滤
	items := listTransactions(t, r, token, "?category=food")
	if len(items) != 1 {
		t.Errorf("category filter returned %d items, want 1", len(items))
	}

	// 描述不区分大小写搜索
	items = listTransactions(t, r, token, "?search_query=GROCERY")
	if len(items) != 1 {
		t.Errorf("search filter returned %d items, want 1", len(items))
	}

	// 日期范围（含端点），且按日期倒序
	items = listTransactions(t, r, token, "?start_date=2025-06-01&end_date=2025-06-30")
	if len(items) != 2 {
		t.Fatalf("date filter returned %d items, want 2", len(items))
	}
	first := items[0].(map[string]interface{})
	if first["description"] != "Bus ticket" {
		t.Errorf("filtered list not date-descending, first = %v", first["description"])
	}

	// 非法类别 -> 400
	w := doJSON(t, r, "GET", "/api/transactions?category=junk", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad category filter status = %d, want 400", w.Code)
	}
}

func TestTransactionGetAndDelete(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	created := createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 10, "description": "Coffee", "category": "food", "date": "2025-06-10",
	})
	id := created["id"].(string)

	w := doJSON(t, r, "GET", "/api/transactions/"+id, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = doJSON(t, r, "DELETE", "/api/transactions/"+id, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	// 删除后查询/再删 -> 404
	w = doJSON(t, r, "GET", "/api/transactions/"+id, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
	w = doJSON(t, r, "DELETE", "/api/transactions/"+id, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}

	if items := listTransactions(t, r, token, ""); len(items) != 0 {
		t.Errorf("list after delete returned %d items, want 0", len(items))
	}
}

func TestProcessRecurringEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	// weekly 模板，起始于两周前：任何日期触发都到期
	start := time.Now().AddDate(0, 0, -14).Format("2006-01-02")
	createTransaction(t, r, token, gin.H{
		"type":                 "expense",
		"amount":               9.99,
		"description":          "Streaming",
		"category":             "entertainment",
		"date":                 start,
		"is_recurring":         true,
		"frequency":            "weekly",
		"recurring_start_date": start,
	})

	// 触发接口无需鉴权
	w := doJSON(t, r, "POST", "/api/transactions/process-recurring", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("process-recurring status = %d, body %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if n := data["transactions_created"].(float64); n != 1 {
		t.Fatalf("transactions_created = %v, want 1", n)
	}

	// 同日重复触发被查重拦截
	w = doJSON(t, r, "POST", "/api/transactions/process-recurring", "", nil)
	data = decodeData(t, w)
	if n := data["transactions_created"].(float64); n != 0 {
		t.Errorf("second run transactions_created = %v, want 0", n)
	}
}
