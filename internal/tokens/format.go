package tokens

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/alnah/go-admitdoc/internal/dateutil"
)

// DefaultCurrencyPaths are rendered with exactly two decimals.
var DefaultCurrencyPaths = []string{
	"payment.amountDue",
	"payment.amountPaid",
	"payment.balance",
	"payment.totalFees",
	"payment.breakdown.amount",
	"payment.breakdown.paid",
}

// DefaultDatePaths are rendered as long dates whenever their string value
// parses as a date, ISO or not.
var DefaultDatePaths = []string{
	"application.startDate",
	"application.responseDeadline",
	"application.orientationDate",
	"application.interviewDate",
	"application.submittedAt",
	"payment.dueDate",
	"payment.statementDate",
	"payment.breakdown.dueDate",
}

// maxFractionDigits caps non-currency numbers.
const maxFractionDigits = 3

// exactDigits is how many significant digits survive the float64 the
// locale printer works on. Wider numbers are grouped from their exact
// decimal string instead.
const exactDigits = 15

// Formatter turns raw context values into display strings.
// A Formatter is immutable after construction and safe for concurrent use.
type Formatter struct {
	locale     language.Tag
	dateLayout string
	currency   map[string]struct{}
	dates      map[string]struct{}
	groupSep   string
	pointSep   string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocale sets the locale used for digit grouping and decimal marks.
func WithLocale(tag language.Tag) Option {
	return func(f *Formatter) {
		f.locale = tag
	}
}

// WithDateLayout sets the Go time layout used for dates.
// An empty layout keeps dateutil.LongLayout.
func WithDateLayout(layout string) Option {
	return func(f *Formatter) {
		if layout != "" {
			f.dateLayout = layout
		}
	}
}

// WithCurrencyPaths adds paths to the currency allow-list.
func WithCurrencyPaths(paths ...string) Option {
	return func(f *Formatter) {
		addPaths(f.currency, paths)
	}
}

// WithDatePaths adds paths to the date allow-list.
func WithDatePaths(paths ...string) Option {
	return func(f *Formatter) {
		addPaths(f.dates, paths)
	}
}

func addPaths(set map[string]struct{}, paths []string) {
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = struct{}{}
		}
	}
}

// NewFormatter creates a Formatter with the default allow-lists, English
// grouping and the long date layout.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		locale:     language.English,
		dateLayout: dateutil.LongLayout,
		currency:   lo.SliceToMap(DefaultCurrencyPaths, toSetEntry),
		dates:      lo.SliceToMap(DefaultDatePaths, toSetEntry),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.groupSep, f.pointSep = separators(f.locale)
	return f
}

// separators reads the grouping and decimal marks of locale from a sample
// number.
func separators(locale language.Tag) (group, point string) {
	sample := message.NewPrinter(locale).Sprintf("%v", number.Decimal(1234567.5,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	var (
		marks []string
		cur   strings.Builder
	)
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				marks = append(marks, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(marks) {
	case 0:
		return ",", "."
	case 1:
		return "", marks[0]
	default:
		return marks[0], marks[len(marks)-1]
	}
}

func toSetEntry(p string) (string, struct{}) {
	return p, struct{}{}
}

// IsCurrencyPath reports whether path is in the currency allow-list.
func (f *Formatter) IsCurrencyPath(path string) bool {
	_, ok := f.currency[path]
	return ok
}

// IsDatePath reports whether path is in the date allow-list.
func (f *Formatter) IsDatePath(path string) bool {
	_, ok := f.dates[path]
	return ok
}

// Format renders v for display at path.
//   - slices and arrays: each element formatted at the same path, non-empty
//     results joined with ", "
//   - time.Time, ISO-like strings and parseable strings at date paths: long date
//   - numbers: two decimals at currency paths, otherwise up to three,
//     grouped per locale
//   - strings: trimmed
//   - anything else: fmt.Sprint
func (f *Formatter) Format(path string, v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return f.formatString(path, x)
	case time.Time:
		return x.Format(f.dateLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format(f.dateLayout)
	case bool:
		return fmt.Sprint(x)
	}

	if d, ok := toDecimal(v); ok {
		return f.formatNumber(path, d)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			if s := f.Format(path, rv.Index(i).Interface()); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return f.Format(path, rv.Elem().Interface())
	case reflect.String:
		return f.formatString(path, rv.String())
	}

	return fmt.Sprint(v)
}

func (f *Formatter) formatString(path, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, ok := dateutil.ParseISO(s); ok {
		return t.Format(f.dateLayout)
	}
	if f.IsDatePath(path) {
		if t, ok := dateutil.Parse(s); ok {
			return t.Format(f.dateLayout)
		}
	}
	return s
}

func (f *Formatter) formatNumber(path string, d decimal.Decimal) string {
	p := message.NewPrinter(f.locale)
	if f.IsCurrencyPath(path) {
		rounded := d.Round(2)
		if !fitsFloat(rounded) {
			return f.groupExact(rounded.StringFixed(2))
		}
		return p.Sprintf("%v", number.Decimal(rounded.InexactFloat64(),
			number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
	if d.IsInteger() && d.Abs().LessThan(decimal.New(9, 18)) {
		return p.Sprintf("%v", number.Decimal(d.IntPart()))
	}
	rounded := d.Round(maxFractionDigits)
	if !fitsFloat(rounded) {
		return f.groupExact(rounded.String())
	}
	return p.Sprintf("%v", number.Decimal(rounded.InexactFloat64(),
		number.MaxFractionDigits(maxFractionDigits)))
}

func fitsFloat(d decimal.Decimal) bool {
	return len(new(big.Int).Abs(d.Coefficient()).String()) <= exactDigits
}

// groupExact inserts the locale marks into a plain decimal string such as
// "-98765432109876543.21", three digits per group.
func (f *Formatter) groupExact(s string) string {
	var b strings.Builder
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		b.WriteByte('-')
		s = rest
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.groupSep)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(f.pointSep)
		b.WriteString(frac)
	}
	return b.String()
}

// toDecimal converts any Go numeric kind, decimal.Decimal or json.Number.
// NaN and infinities are not numbers for display purposes.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Decimal{}, false
		}
		return *x, true
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), true
	case reflect.Float32, reflect.Float64:
		fl := rv.Float()
		if math.IsNaN(fl) || math.IsInf(fl, 0) {
			return decimal.Decimal{}, false
		}
		if rv.Kind() == reflect.Float32 {
			return decimal.NewFromFloat32(float32(fl)), true
		}
		return decimal.NewFromFloat(fl), true
	}
	return decimal.Decimal{}, false
}

// FormatAt is Format(path, ValueAt(ctx, path)).
func (f *Formatter) FormatAt(ctx any, path string) string {
	return f.Format(path, ValueAt(ctx, path))
}

// FillString replaces every "{{ path }}" in template with the formatted
// value at that path in ctx.
func (f *Formatter) FillString(template string, ctx any) string {
	return Fill(template, func(path string) string {
		return f.FormatAt(ctx, path)
	})
}
