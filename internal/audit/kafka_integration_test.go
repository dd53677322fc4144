//go:build integration

package audit

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"syndicate/pkg/domain"
	"syndicate/pkg/testutil/containers"
)

func TestKafkaSink_ProducesAuditTrail(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)
	ctx := context.Background()

	const topic = "syndicate.audit.test"
	sink, err := NewKafkaSink(ctx, []string{rp.Broker}, topic)
	require.NoError(t, err)
	t.Cleanup(sink.Close)

	subject := domain.MustAddress("0x" + strings.Repeat("1a", 20))
	event := Event{
		Kind:      EventMembershipClaimed,
		Component: "ledger",
		Actor:     subject,
		Subject:   subject,
		Identity:  "0",
		Timestamp: time.Now().UTC(),
		Attrs:     []any{"outcome", "claimed"},
	}
	require.NoError(t, sink.Append(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, subject.String(), string(records[0].Key), "records are keyed by subject")

	var decoded struct {
		Kind    string            `json:"kind"`
		Subject string            `json:"subject"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(records[0].Value, &decoded))
	assert.Equal(t, string(EventMembershipClaimed), decoded.Kind)
	assert.Equal(t, subject.String(), decoded.Subject)
	assert.Equal(t, "claimed", decoded.Details["outcome"])
}

func TestKafkaSink_IsWriteOnly(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)
	ctx := context.Background()

	sink, err := NewKafkaSink(ctx, []string{rp.Broker}, "syndicate.audit.writeonly")
	require.NoError(t, err)
	t.Cleanup(sink.Close)

	_, err = sink.ListBySubject(ctx, domain.ZeroAddress)
	require.Error(t, err)
}
