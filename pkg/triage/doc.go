// Package triage provides a fraud complaint classification engine that maps
// free-form complaint text to a two-level taxonomy, extracts entities and
// derives case priority and recommended actions.
//
// Quick start:
//
//	t, err := triage.New(triage.WithModelDir("models/"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Close()
//
//	report, _ := t.Classify("I lost Rs.15000 from my HDFC debit card in an unauthorized transaction")
//	fmt.Println(report.PrimaryCategory, report.Subcategory, report.Priority)
//
// The Triage instance is safe for concurrent use. Create once, reuse across
// requests.
package triage
