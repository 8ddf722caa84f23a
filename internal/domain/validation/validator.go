// Package validation runs the form rules applied before every create or
// update. It returns a field → message map keyed by the json field name;
// callers decide how to surface it.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"ocorrencias_logistica/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// Errors maps a json field name to its first failing rule message.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// First returns the first failing field following the on-screen order.
func (e Errors) First(order []string) string {
	for _, f := range order {
		if _, ok := e[f]; ok {
			return f
		}
	}
	for f := range e {
		return f
	}
	return ""
}

// AsErrors unwraps err into Errors.
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Validator wraps go-playground/validator with the form rules. The clock
// decides what "today" means for the no-future-dates rule.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	val := &Validator{v: validator.New(), now: now}

	val.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(val.v, "positive", isPositiveNumber)
	mustRegister(val.v, "isodate", isISODate)
	mustRegister(val.v, "notfuture", val.notFuture)
	mustRegister(val.v, "tipo", func(fl validator.FieldLevel) bool {
		return entities.IsOccurrenceType(fl.Field().String())
	})
	mustRegister(val.v, "substatus", func(fl validator.FieldLevel) bool {
		_, ok := entities.ParseSubStatus(fl.Field().String())
		return ok
	})
	val.v.RegisterStructValidation(occurrenceDates, OccurrenceForm{})
	return val
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Occurrence normalizes f in place and validates it.
func (v *Validator) Occurrence(f *OccurrenceForm) error {
	f.normalize()
	return v.run(*f)
}

// Expedicao normalizes f in place and validates it.
func (v *Validator) Expedicao(f *ExpedicaoForm) error {
	f.normalize()
	return v.run(*f)
}

// Driver normalizes CPF/plate in place and validates them.
func (v *Validator) Driver(f *DriverForm) error {
	f.normalize()
	return v.run(*f)
}

// Receiver normalizes CPF/plate in place and validates them.
func (v *Validator) Receiver(f *ReceiverForm) error {
	f.normalize()
	return v.run(*f)
}

// OccurrenceField re-validates a single field, so an inline error can be
// cleared as soon as that field's own rule passes. "" means valid.
func (v *Validator) OccurrenceField(f OccurrenceForm, field string) string {
	errs, ok := AsErrors(v.Occurrence(&f))
	if !ok {
		return ""
	}
	return errs[field]
}

func (v *Validator) run(form any) error {
	err := v.v.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe.Field(), fe.Tag(), fe.Param())
	}
	return out
}

func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	d := fl.Field().String()
	if d == "" {
		return true
	}
	return d <= v.now().Format(entities.DateLayout)
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(entities.DateLayout, fl.Field().String())
	return err == nil
}

func isPositiveNumber(fl validator.FieldLevel) bool {
	n, err := strconv.ParseFloat(strings.ReplaceAll(fl.Field().String(), ",", "."), 64)
	return err == nil && n > 0
}

func occurrenceDates(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(OccurrenceForm)
	if !ok {
		return
	}
	nota, err1 := time.Parse(entities.DateLayout, f.DataNota)
	ocorr, err2 := time.Parse(entities.DateLayout, f.DataOcorrencia)
	if err1 != nil || err2 != nil {
		return
	}
	if ocorr.Before(nota) {
		sl.ReportError(f.DataOcorrencia, "dataOcorrencia", "DataOcorrencia", "afternota", "")
	}
}
