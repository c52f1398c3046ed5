package attempt

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropasync/pkg/rop"
)

var errBad = errors.New("bad")

func failing() (int, error) { return 0, errBad }

func TestDo_Ok(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Ok[int, string](1), Do(func() (int, error) { return 1, nil }, WithMessage("error")))
	assert.Equal(t, rop.Ok[int, error](42), Do[int, error](func() (int, error) { return strconv.Atoi("42") }))
}

func TestDo_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Error[int, string]("error"), Do(failing, WithMessage("error")))
}

func TestDo_HandlerWinsOverMessage(t *testing.T) {
	t.Parallel()

	handler := WithHandler(func(fault error) string {
		if errors.Is(fault, errBad) {
			return "not good"
		}
		return "error"
	})

	assert.Equal(t, rop.Error[int, string]("not good"), Do(failing, handler))
	assert.Equal(t, rop.Error[int, string]("not good"), Do(failing, WithMessage("error"), handler))
	assert.Equal(t, rop.Error[int, string]("not good"), Do(failing, handler, WithMessage("error")))
}

func TestDo_FaultIsPayload(t *testing.T) {
	t.Parallel()

	res := Do[int, error](failing)
	require.True(t, res.IsError())
	assert.Same(t, errBad, res.Failure())

	anyRes := Do[int, any](failing)
	assert.Equal(t, rop.Error[int, any](errBad), anyRes)
}

func TestDo_FaultDoesNotFitPayload(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "invalid result: bad", func() { Do[int, string](failing) })
}

func TestDo_Panic(t *testing.T) {
	t.Parallel()

	res := Do[int, error](func() (int, error) {
		var m map[string]int
		m["x"] = 1
		return 1, nil
	})

	var p *rop.PanicError
	require.ErrorAs(t, res.Failure(), &p)
	assert.NotEmpty(t, p.Stack)

	msg := Do(func() (int, error) { panic("boom") }, WithHandler(func(fault error) string { return fault.Error() }))
	assert.Equal(t, rop.Error[int, string]("panic: boom"), msg)
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	type doc struct {
		Foo string `json:"foo"`
	}

	assert.Equal(t, rop.Ok[doc, string](doc{Foo: "bar"}), ParseJSON[doc](`{"foo": "bar"}`))
	assert.Equal(t, rop.Ok[map[string]any, string](map[string]any{"foo": "bar"}), ParseJSON[map[string]any](`{"foo": "bar"}`))

	bad := ParseJSON[doc](`{foo: "bar"}`)
	require.True(t, bad.IsError())
	assert.NotEmpty(t, bad.Failure())

	assert.Equal(t, rop.Error[doc, string]("bad"), ParseJSON[doc](`{foo: "bar"}`, WithMessage("bad")))
}
