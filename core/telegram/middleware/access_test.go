package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

type accessTestContext struct {
	tele.Context
	sender    *tele.User
	callback  *tele.Callback
	responded bool
}

func (c *accessTestContext) Sender() *tele.User        { return c.sender }
func (c *accessTestContext) Callback() *tele.Callback  { return c.callback }
func (c *accessTestContext) Update() tele.Update       { return tele.Update{ID: 7} }
func (c *accessTestContext) Respond(...*tele.CallbackResponse) error {
	c.responded = true
	return nil
}

func TestGuardPermitted(t *testing.T) {
	guard := NewGuard([]int64{42, 7})
	assert.True(t, guard.Permitted(42))
	assert.False(t, guard.Permitted(99))

	empty := NewGuard(nil)
	assert.False(t, empty.Permitted(42), "an empty allow-list permits nobody")
}

func TestAccessMiddlewareAllowsListedUser(t *testing.T) {
	mw := AccessMiddleware(AccessOptions{AllowedUsers: []int64{42}})

	called := false
	handler := mw(func(tele.Context) error {
		called = true
		return nil
	})

	err := handler(&accessTestContext{sender: &tele.User{ID: 42}})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAccessMiddlewareDropsUnknownUser(t *testing.T) {
	mw := AccessMiddleware(AccessOptions{AllowedUsers: []int64{42}})

	called := false
	handler := mw(func(tele.Context) error {
		called = true
		return nil
	})

	err := handler(&accessTestContext{sender: &tele.User{ID: 99}})
	require.NoError(t, err)
	assert.False(t, called, "unlisted senders never reach the handler")
}

func TestAccessMiddlewareDropsSenderlessUpdate(t *testing.T) {
	mw := AccessMiddleware(AccessOptions{AllowedUsers: []int64{42}})

	called := false
	handler := mw(func(tele.Context) error {
		called = true
		return nil
	})

	err := handler(&accessTestContext{sender: nil})
	require.NoError(t, err)
	assert.False(t, called, "updates without a sender never reach the handler")
}

func TestAccessMiddlewareAnswersDeniedCallback(t *testing.T) {
	mw := AccessMiddleware(AccessOptions{AllowedUsers: []int64{42}})
	handler := mw(func(tele.Context) error { return nil })

	c := &accessTestContext{
		sender:   &tele.User{ID: 99},
		callback: &tele.Callback{ID: "cb"},
	}
	require.NoError(t, handler(c))
	assert.True(t, c.responded, "denied callbacks are answered so the client stops spinning")
}

func TestAccessMiddlewareCustomReject(t *testing.T) {
	rejected := false
	mw := AccessMiddleware(AccessOptions{
		AllowedUsers: []int64{42},
		OnReject: func(tele.Context) error {
			rejected = true
			return nil
		},
	})
	handler := mw(func(tele.Context) error { return nil })

	require.NoError(t, handler(&accessTestContext{sender: &tele.User{ID: 99}}))
	assert.True(t, rejected)
}
