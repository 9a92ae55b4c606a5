package events_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/multicoinnetwork/multicoin/internal/events"
	"gitlab.com/multicoinnetwork/multicoin/internal/logging"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

func TestSubscribeSync(t *testing.T) {
	bus := events.NewBus(logging.NewTestLogger(t, "info"))

	var got []protocol.Minted
	events.SubscribeSync[protocol.Minted](bus, func(e protocol.Minted) {
		got = append(got, e)
	})

	bus.Publish(protocol.Minted{CoinId: 1})
	bus.Publish(protocol.Burned{CoinId: 2}) // different type, not delivered
	bus.Publish(protocol.Minted{CoinId: 3})

	require.Len(t, got, 2)
	require.Equal(t, uint64(1), got[0].CoinId)
	require.Equal(t, uint64(3), got[1].CoinId)
}

func TestSubscriberPanicIsContained(t *testing.T) {
	bus := events.NewBus(logging.NewTestLogger(t, "info"))

	events.SubscribeSync[protocol.Minted](bus, func(protocol.Minted) {
		panic("boom")
	})

	var delivered bool
	events.SubscribeSync[protocol.Minted](bus, func(protocol.Minted) {
		delivered = true
	})

	require.NotPanics(t, func() { bus.Publish(protocol.Minted{}) })
	require.True(t, delivered)
}
