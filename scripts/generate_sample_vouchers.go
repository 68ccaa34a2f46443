package main

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"storefront-admin/internal/model"
	"storefront-admin/internal/voucher"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// generateSampleVouchers writes a gzipped voucher import file and previews how
// each sample voucher validates against a few cart totals.
func main() {
	out := flag.String("out", "data/vouchers/vouchers.csv.gz", "output file")
	flag.Parse()

	expired := time.Now().AddDate(0, 0, -1).UTC().Format(time.RFC3339)
	nextYear := time.Now().AddDate(1, 0, 0).UTC().Format(time.RFC3339)

	rows := [][]string{
		// code, discount_type, discount_value, max_discount, min_purchase_amount, max_uses, expires_at, active
		{"SAVE10", "percentage", "10", "", "0", "", "", "true"},
		{"SAVE20CAP", "percentage", "20", "150", "500", "100", nextYear, "true"},
		{"FLAT100", "fixed", "100", "", "1000", "", "", "true"},
		{"BIGSPENDER", "fixed", "500", "", "1500.5", "", "", "true"},
		{"LASTYEAR", "percentage", "15", "", "0", "", expired, "true"},
		{"PAUSED", "fixed", "50", "", "0", "", "", "false"},
		{"SOLDOUT", "fixed", "75", "", "0", "0", "", "true"},
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	if err := writeVoucherFile(*out, rows); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	fmt.Printf("Created %s with %d vouchers\n\n", *out, len(rows))

	if err := preview(*out); err != nil {
		log.Fatalf("Failed to preview %s: %v", *out, err)
	}
}

func writeVoucherFile(filePath string, rows [][]string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	w := csv.NewWriter(gz)

	if err := w.Write(voucher.CSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return nil
}

// preview loads the file back through the import loader and validates every
// code against an in-memory store.
func preview(filePath string) error {
	ctx := context.Background()
	logger := zerolog.Nop()

	inputs, err := voucher.NewFileLoader(logger).Load(ctx, filePath)
	if err != nil {
		return err
	}

	store := voucher.NewMemoryStore(len(inputs))
	for _, in := range inputs {
		if err := in.Normalize(); err != nil {
			fmt.Printf("  skipped %-12s %v\n", in.Code, err)
			continue
		}
		v := model.Voucher{ID: uuid.New()}
		in.Apply(&v)
		store.Put(v)
	}

	validator := voucher.NewValidator(store, voucher.DefaultValidatorConfig(), nil, logger)
	carts := []decimal.Decimal{decimal.NewFromInt(300), decimal.NewFromInt(1200), decimal.NewFromInt(5000)}

	for _, in := range inputs {
		for _, total := range carts {
			res := validator.Validate(ctx, in.Code, total)
			if res.Valid {
				fmt.Printf("  %-12s cart %6s  discount %s\n", in.Code, total, res.Discount)
			} else {
				fmt.Printf("  %-12s cart %6s  %s\n", in.Code, total, res.Message)
			}
		}
	}
	return nil
}
