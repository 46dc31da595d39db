package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := NewBroker[string]()

	var got []string
	b.Subscribe(func(v string) { got = append(got, v) })

	b.Publish("login")
	b.Publish("logout")

	assert.Equal(t, []string{"login", "logout"}, got)
}

func TestLateSubscriberGetsCurrentValue(t *testing.T) {
	b := NewBroker[int]()
	b.Publish(42)

	var got []int
	b.Subscribe(func(v int) { got = append(got, v) })

	assert.Equal(t, []int{42}, got)
}

func TestSubscribeBeforeAnyPublishDeliversNothing(t *testing.T) {
	b := NewBroker[int]()

	called := false
	b.Subscribe(func(int) { called = true })

	assert.False(t, called)
	_, ok := b.Current()
	assert.False(t, ok)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBroker[string]()

	var got []string
	unsub := b.Subscribe(func(v string) { got = append(got, v) })

	b.Publish("a")
	unsub()
	b.Publish("b")

	assert.Equal(t, []string{"a"}, got)
}

func TestCurrent(t *testing.T) {
	b := NewBroker[string]()
	b.Publish("sesión iniciada")

	v, ok := b.Current()
	assert.True(t, ok)
	assert.Equal(t, "sesión iniciada", v)
}
