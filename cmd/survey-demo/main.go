package main

import (
	"fmt"
	"os"

	"unirate/internal/core"
	"unirate/internal/form"
	"unirate/internal/institutions"
	"unirate/internal/recordlog"
	"unirate/pkg/schema"
)

func main() {
	cfg, err := core.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := core.NewLogger(cfg.LogLevel)

	fmt.Println("🎓 unirate Survey Demo")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	adapter := loadAdapter(cfg, logger)

	names := adapter.Names()
	fmt.Printf("📚 %d schools available\n", len(names))
	for i, name := range names {
		if i == 3 {
			fmt.Println("   ...")
			break
		}
		fmt.Printf("   - %s\n", name)
	}
	fmt.Println()

	f := form.New(form.GeneratorForScheme(cfg.IDScheme), logger)
	store := recordlog.NewStore(cfg.RecordLogPath)
	f.OnSubmitted(store.Subscriber(logger))

	// First attempt: empty draft, every required field missing.
	fmt.Println("📝 Submitting an empty draft...")
	if _, err := f.Submit(); err != nil {
		fmt.Printf("❌ Submit failed hard: %v\n", err)
		os.Exit(1)
	}
	for field, msg := range f.Errors() {
		fmt.Printf("   ⚠️  %s: %s\n", field, msg)
	}
	fmt.Println()

	// Fill the draft and retry. Nothing was lost on the failed attempt.
	fmt.Println("✏️  Filling in the survey...")
	draft := f.Draft()
	if len(names) > 0 {
		draft.SchoolName = names[0]
	} else {
		draft.SchoolName = "Acme University"
	}
	draft.Sex = schema.SexFemale
	draft.Nationality = "Dutch"
	draft.CurrentStudent = true
	draft.YearOfStudy = "3"
	draft.NameOfStudy = "Computer Science"
	draft.AdditionalComments = "Would recommend."
	f.SetRating(schema.RatingQualityOfTeaching, 5)
	f.SetRating(schema.RatingSafety, 4)
	f.SetRating(schema.RatingLocation, 4)
	f.SetRating(schema.RatingFacilities, 3)

	record, err := f.Submit()
	if err != nil {
		fmt.Printf("❌ Submit failed hard: %v\n", err)
		os.Exit(1)
	}
	if record == nil {
		fmt.Printf("❌ Unexpected validation failure: %v\n", f.Errors())
		os.Exit(1)
	}

	fmt.Printf("✅ Submitted as %s\n", record.UniqueID)
	fmt.Printf("   Record appended to %s\n", cfg.RecordLogPath)
	fmt.Println()
	fmt.Println("✨ Done")
}

// loadAdapter loads the configured dataset, falling back to a small built-in
// sample when the file is missing so the demo runs out of the box.
func loadAdapter(cfg *core.Config, logger core.Logger) *institutions.Adapter {
	records, err := institutions.LoadDataset(cfg.DatasetPath)
	if err != nil {
		logger.Warn("dataset unavailable, using built-in sample", "path", cfg.DatasetPath, "error", err)
		records = []institutions.RawSchool{
			{Naam: "Universiteit van Amsterdam", Soort: "universiteit", Provincie: "Noord-Holland", Plaatsnaam: "Amsterdam", Internetadres: "www.uva.nl", Brinnummer: "21PK"},
			{Naam: "Technische Universiteit Delft", Soort: "universiteit", Provincie: "Zuid-Holland", Plaatsnaam: "Delft", Internetadres: "www.tudelft.nl", Brinnummer: "21PL"},
			{Naam: "Hogeschool Utrecht", Soort: "hogeschool", Provincie: "Utrecht", Plaatsnaam: "Utrecht", Internetadres: "www.hu.nl", Brinnummer: "25DW"},
		}
	}
	return institutions.NewAdapter(records)
}
