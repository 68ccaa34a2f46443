package voucher

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront-admin/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CSVHeader lists the columns of a voucher import file in canonical order.
var CSVHeader = []string{
	"code", "discount_type", "discount_value", "max_discount",
	"min_purchase_amount", "max_uses", "expires_at", "active",
}

// fileLoader implements Loader for gzipped CSV files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based voucher loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "voucher-loader").Logger(),
	}
}

// Load reads a gzipped voucher CSV file.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.VoucherInput, error) {
	l.logger.Info().Str("file", filePath).Msg("loading voucher file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open voucher file")
		return nil, errors.Wrapf(err, "failed to open voucher file %s", filePath)
	}
	defer file.Close()

	vouchers, err := decodeVouchers(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode voucher file")
		return nil, errors.Wrapf(err, "failed to decode voucher file %s", filePath)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("vouchers_loaded", len(vouchers)).
		Msg("voucher file loaded successfully")

	return vouchers, nil
}

// decodeVouchers reads gzip-compressed CSV with a header row naming the columns.
// Column order is free; unknown columns are ignored.
func decodeVouchers(ctx context.Context, r io.Reader) ([]model.VoucherInput, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gzip reader")
	}
	defer gzipReader.Close()

	reader := csv.NewReader(gzipReader)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"code", "discount_type", "discount_value"} {
		if _, ok := index[required]; !ok {
			return nil, errors.Newf("missing required column %q", required)
		}
	}

	var vouchers []model.VoucherInput
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		if field("code") == "" {
			continue
		}

		in, err := parseRecord(field)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		vouchers = append(vouchers, in)
	}

	return vouchers, nil
}

func parseRecord(field func(string) string) (model.VoucherInput, error) {
	in := model.VoucherInput{
		Code:         field("code"),
		DiscountType: model.DiscountType(strings.ToLower(field("discount_type"))),
		Active:       true,
	}

	var err error
	if in.DiscountValue, err = decimal.NewFromString(field("discount_value")); err != nil {
		return in, errors.Wrap(err, "invalid discount_value")
	}

	if s := field("max_discount"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return in, errors.Wrap(err, "invalid max_discount")
		}
		in.MaxDiscount = &d
	}

	if s := field("min_purchase_amount"); s != "" {
		if in.MinPurchaseAmount, err = decimal.NewFromString(s); err != nil {
			return in, errors.Wrap(err, "invalid min_purchase_amount")
		}
	}

	if s := field("max_uses"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return in, errors.Wrap(err, "invalid max_uses")
		}
		in.MaxUses = &n
	}

	if s := field("expires_at"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return in, errors.Wrap(err, "invalid expires_at")
		}
		in.ExpiresAt = &t
	}

	if s := field("active"); s != "" {
		if in.Active, err = strconv.ParseBool(s); err != nil {
			return in, errors.Wrap(err, "invalid active")
		}
	}

	return in, nil
}
