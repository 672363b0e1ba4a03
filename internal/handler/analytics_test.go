package handler

import (
	"fmt"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const moneyTolerance = 0.01

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < moneyTolerance
}

func TestDashboardSummary(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	now := time.Now().Format(time.RFC3339)
	createTransaction(t, r, token, gin.H{
		"type": "income", "amount": 1000.0, "description": "Paycheck", "category": "salary", "date": now,
	})
	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 120.50, "description": "Groceries", "category": "food", "date": now,
	})
	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 60.0, "description": "Bus pass", "category": "transport", "date": now,
	})

	doJSON(t, r, "POST", "/api/assets", token, gin.H{"description": "Savings", "current_value": 5000.0})
	doJSON(t, r, "POST", "/api/assets", token, gin.H{"description": "Car", "current_value": 7000.0})
	doJSON(t, r, "POST", "/api/liabilities", token, gin.H{"description": "Car loan", "amount_owed": 3000.0})

	w := doJSON(t, r, "GET", "/api/dashboard/summary", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d, body %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)

	totalAssets := data["total_assets"].(float64)
	totalLiabilities := data["total_liabilities"].(float64)
	netWorth := data["net_worth"].(float64)
	income := data["monthly_income"].(float64)
	expenses := data["monthly_expenses"].(float64)
	cashFlow := data["cash_flow"].(float64)

	if !almostEqual(totalAssets, 12000.0) {
		t.Errorf("total_assets = %f, want 12000", totalAssets)
	}
	if !almostEqual(totalLiabilities, 3000.0) {
		t.Errorf("total_liabilities = %f, want 3000", totalLiabilities)
	}
	if !almostEqual(netWorth, totalAssets-totalLiabilities) {
		t.Errorf("net_worth = %f, want total_assets - total_liabilities = %f", netWorth, totalAssets-totalLiabilities)
	}
	if !almostEqual(income, 1000.0) || !almostEqual(expenses, 180.50) {
		t.Errorf("monthly income/expenses = %f/%f, want 1000/180.50", income, expenses)
	}
	if !almostEqual(cashFlow, income-expenses) {
		t.Errorf("cash_flow = %f, want income - expenses = %f", cashFlow, income-expenses)
	}

	breakdown := data["expense_breakdown"].(map[string]interface{})
	if !almostEqual(breakdown["food"].(float64), 120.50) {
		t.Errorf("expense_breakdown[food] = %v, want 120.50", breakdown["food"])
	}
	if !almostEqual(breakdown["transport"].(float64), 60.0) {
		t.Errorf("expense_breakdown[transport] = %v, want 60", breakdown["transport"])
	}
	// 收入不计入支出分布
	if _, ok := breakdown["salary"]; ok {
		t.Error("expense_breakdown contains income category salary")
	}
}

func TestCashFlowReport(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	now := time.Now()
	createTransaction(t, r, token, gin.H{
		"type": "income", "amount": 100.0, "description": "Pay", "category": "salary", "date": now.Format(time.RFC3339),
	})
	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 40.0, "description": "Food", "category": "food", "date": now.Format(time.RFC3339),
	})

	w := doJSON(t, r, "GET", "/api/reports/cashflow", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cashflow status = %d", w.Code)
	}
	entries := decodeData(t, w)["cash_flow"].([]interface{})

	// 必须恰好 12 期，最旧在前
	if len(entries) != 12 {
		t.Fatalf("cash flow entries = %d, want 12", len(entries))
	}

	last := entries[11].(map[string]interface{})
	wantLabel := fmt.Sprintf("%s %d", now.Month().String(), now.Year())
	if last["month"] != wantLabel {
		t.Errorf("last entry month = %v, want %v (newest last)", last["month"], wantLabel)
	}
	if !almostEqual(last["income"].(float64), 100.0) || !almostEqual(last["expenses"].(float64), 40.0) {
		t.Errorf("last entry income/expenses = %v/%v, want 100/40", last["income"], last["expenses"])
	}
	if !almostEqual(last["net"].(float64), 60.0) {
		t.Errorf("last entry net = %v, want 60", last["net"])
	}

	// 每期 net = income - expenses
	for i, e := range entries {
		entry := e.(map[string]interface{})
		if !almostEqual(entry["net"].(float64), entry["income"].(float64)-entry["expenses"].(float64)) {
			t.Errorf("entry %d: net != income - expenses", i)
		}
	}
}

func TestSpendingReport(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 300.0, "description": "Rent share", "category": "housing", "date": "2025-06-01",
	})
	createTransaction(t, r, token, gin.H{
		"type": "expense", "amount": 100.0, "description": "Groceries", "category": "food", "date": "2025-06-10",
	})
	// 收入不应计入支出报表
	createTransaction(t, r, token, gin.H{
		"type": "income", "amount": 1000.0, "description": "Pay", "category": "salary", "date": "2025-06-05",
	})

	w := doJSON(t, r, "GET", "/api/reports/spending?start_date=2025-06-01&end_date=2025-06-30", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("spending status = %d, body %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)

	totalSpent := data["total_spent"].(float64)
	if !almostEqual(totalSpent, 400.0) {
		t.Errorf("total_spent = %f, want 400", totalSpent)
	}

	categories := data["categories"].([]interface{})
	if len(categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(categories))
	}

	// 金额降序
	first := categories[0].(map[string]interface{})
	if first["category"] != "housing" {
		t.Errorf("first category = %v, want housing (largest amount)", first["category"])
	}

	// 金额合计等于 total_spent，百分比合计 100
	var amountSum, pctSum float64
	for _, c := range categories {
		cat := c.(map[string]interface{})
		amountSum += cat["amount"].(float64)
		pctSum += cat["percentage"].(float64)
	}
	if !almostEqual(amountSum, totalSpent) {
		t.Errorf("sum of category amounts = %f, want total_spent %f", amountSum, totalSpent)
	}
	if !almostEqual(pctSum, 100.0) {
		t.Errorf("sum of percentages = %f, want 100", pctSum)
	}
}

func TestSpendingReport_EmptyRange(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "a@x.com")

	w := doJSON(t, r, "GET", "/api/reports/spending?start_date=2020-01-01&end_date=2020-01-31", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("spending status = %d", w.Code)
	}
	data := decodeData(t, w)

	if total := data["total_spent"].(float64); total != 0 {
		t.Errorf("total_spent = %f, want 0", total)
	}
	if categories := data["categories"].([]interface{}); len(categories) != 0 {
		t.Errorf("categories = %d, want 0", len(categories))
	}
}
