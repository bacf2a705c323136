package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "mac"}
	err := errors.New("model is not supported")

	result := r.Fail(err)

	assert.Equal(t, StatusFail, result.Status)
	assert.Equal(t, []string{"model is not supported"}, result.Details)
	assert.Same(t, err, result.Err)
	assert.False(t, result.OK())
}

func TestResult_FailKeepsEarlierDetails(t *testing.T) {
	r := &Result{Name: "mac"}
	r.AddDetail("os: 14.4.0")

	result := r.Fail(errors.New("too new"))

	assert.Equal(t, []string{"os: 14.4.0", "too new"}, result.Details)
}

func TestResult_FailAll(t *testing.T) {
	first := errors.New("os too new")
	second := errors.New("bad model")
	r := &Result{Name: "mac"}

	result := r.FailAll(first, nil, second)

	assert.Equal(t, StatusFail, result.Status)
	assert.Equal(t, []string{"os too new", "bad model"}, result.Details)
	assert.ErrorIs(t, result.Err, first)
	assert.ErrorIs(t, result.Err, second)
}

func TestResult_Pass(t *testing.T) {
	r := &Result{Name: "mac", Err: errors.New("stale")}

	result := r.Pass()

	assert.True(t, result.OK())
	assert.NoError(t, result.Err)
}

func TestResult_AddDetail(t *testing.T) {
	r := &Result{Name: "mac"}

	result := r.AddDetail("first detail").AddDetail("second detail")

	assert.Equal(t, []string{"first detail", "second detail"}, result.Details)
	assert.Same(t, r, result, "AddDetail should return the same Result pointer")
}

func TestResult_AddDetailf(t *testing.T) {
	r := &Result{Name: "mac"}

	result := r.AddDetailf("model: %s", "MacBookPro14,1")

	assert.Equal(t, []string{"model: MacBookPro14,1"}, result.Details)
}
