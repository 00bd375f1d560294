package notice

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestToastShowAndExpire(t *testing.T) {
	toast := NewToast(20 * time.Millisecond)
	defer toast.Close()

	toast.Show("Order text copied to clipboard!")
	assert.Equal(t, "Order text copied to clipboard!", toast.Current())

	assert.Eventually(t, func() bool {
		return toast.Current() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestToastRetriggerKeepsNewest(t *testing.T) {
	toast := NewToast(100 * time.Millisecond)
	defer toast.Close()

	toast.Show("first")
	time.Sleep(60 * time.Millisecond)
	toast.Show("second")
	time.Sleep(60 * time.Millisecond)

	// the first timer would have fired by now
	assert.Equal(t, "second", toast.Current())

	assert.Eventually(t, func() bool {
		return toast.Current() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestToastClose(t *testing.T) {
	toast := NewToast(time.Hour)
	toast.Show("hello")

	toast.Close()

	assert.Empty(t, toast.Current())
}

func TestToastDefaultDuration(t *testing.T) {
	assert.Equal(t, DefaultDuration, NewToast(0).duration)
}
