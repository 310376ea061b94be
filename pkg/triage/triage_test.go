package triage

import (
	"os"
	"sync"
	"testing"
)

const testModelDir = "../../models"

func skipWithoutModel(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testModelDir + "/model_quantized.onnx"); os.IsNotExist(err) {
		t.Skip("ONNX model not available, skipping integration test")
	}
}

func TestNewBadPathReturnsError(t *testing.T) {
	_, err := New(WithModelDir("/nonexistent/path"))
	if err == nil {
		t.Fatal("expected error for bad model path, got nil")
	}
}

func TestClassifyKnownComplaint(t *testing.T) {
	skipWithoutModel(t)

	tr, err := New(WithModelDir(testModelDir))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer tr.Close()

	report, err := tr.Classify("I lost Rs.15000 from my HDFC debit card in an unauthorized transaction")
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}

	if report.PrimaryCategory != "Financial Fraud" {
		t.Errorf("PrimaryCategory = %q, want Financial Fraud", report.PrimaryCategory)
	}
	if report.Subcategory != "Debit Card Fraud" {
		t.Errorf("Subcategory = %q, want Debit Card Fraud", report.Subcategory)
	}
	if report.Priority != "HIGH" {
		t.Errorf("Priority = %q, want HIGH", report.Priority)
	}
	if report.Entities.Amount != "Rs.15000" {
		t.Errorf("Entities.Amount = %q, want Rs.15000", report.Entities.Amount)
	}
}

func TestClassifyEmptyReturnsError(t *testing.T) {
	skipWithoutModel(t)

	tr, err := New(WithModelDir(testModelDir))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer tr.Close()

	if _, err := tr.Classify("   "); err == nil {
		t.Fatal("expected error for blank complaint, got nil")
	}
}

func TestClassifyConcurrent(t *testing.T) {
	skipWithoutModel(t)

	tr, err := New(WithModelDir(testModelDir))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer tr.Close()

	texts := []string{
		"Someone took Rs.5000 via UPI from my PhonePe account",
		"My Instagram profile was hacked",
		"They threatened a digital arrest over an arrest warrant",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := tr.Classify(texts[i%len(texts)]); err != nil {
				t.Errorf("Classify() error: %v", err)
			}
		}(i)
	}
	wg.Wait()
}

func TestClassifyBatch(t *testing.T) {
	skipWithoutModel(t)

	tr, err := New(WithModelDir(testModelDir))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer tr.Close()

	reports, err := tr.ClassifyBatch([]string{
		"I lost Rs.20000 from my credit card, unauthorized transaction",
		"fake facebook profile impersonating me",
	})
	if err != nil {
		t.Fatalf("ClassifyBatch() error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[0].PrimaryCategory != "Financial Fraud" {
		t.Errorf("reports[0].PrimaryCategory = %q", reports[0].PrimaryCategory)
	}
	if reports[1].PrimaryCategory != "Social Media Fraud" {
		t.Errorf("reports[1].PrimaryCategory = %q", reports[1].PrimaryCategory)
	}
}
