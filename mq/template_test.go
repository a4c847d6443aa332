package mq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvitation(t *testing.T) {
	event := BuildInvitationEvent(
		10, 71,
		"rahul@example.com", "Rahul",
		"Sharma Wedding", "Jaipur", "2026-11-20", "Anita",
	)

	subject, body, err := RenderInvitation(event)
	require.NoError(t, err)

	assert.Equal(t, "婚礼邀请 | Sharma Wedding", subject)
	assert.Contains(t, body, "Rahul")
	assert.Contains(t, body, "Sharma Wedding")
	assert.Contains(t, body, "Jaipur")
	assert.Contains(t, body, "2026-11-20")
	assert.Contains(t, body, "Anita")
}

func TestRenderInvitation_EscapesHTML(t *testing.T) {
	event := BuildInvitationEvent(
		10, 71,
		"x@example.com", "<script>alert(1)</script>",
		"W", "C", "2026-11-20", "H",
	)

	_, body, err := RenderInvitation(event)
	require.NoError(t, err)
	assert.False(t, strings.Contains(body, "<script>alert(1)</script>"), "宾客姓名必须被转义")
}

func TestRenderRelationshipRequest(t *testing.T) {
	event := BuildRelationshipRequestEvent(31, "b@example.com", "Bhavna", "Anita", "Sister")

	subject, body, err := RenderRelationshipRequest(event)
	require.NoError(t, err)
	assert.Equal(t, "新的亲友关系请求 | 来自 Anita", subject)
	assert.Contains(t, body, "Bhavna")
	assert.Contains(t, body, "Anita")
	assert.Contains(t, body, "Sister")
}

func TestRender_DispatchesByType(t *testing.T) {
	t.Run("invitation", func(t *testing.T) {
		event := BuildInvitationEvent(10, 71, "a@b.c", "A", "W", "C", "2026-11-20", "H")
		subject, _, err := Render(event)
		require.NoError(t, err)
		assert.Contains(t, subject, "婚礼邀请")
	})

	t.Run("relationship_request", func(t *testing.T) {
		event := BuildRelationshipRequestEvent(31, "b@example.com", "B", "A", "Sister")
		subject, _, err := Render(event)
		require.NoError(t, err)
		assert.Contains(t, subject, "亲友关系请求")
	})

	t.Run("unknown_type", func(t *testing.T) {
		_, _, err := Render(NotifyEvent{Type: "bogus"})
		require.Error(t, err)
	})
}

func TestBuildInvitationEvent_Defaults(t *testing.T) {
	event := BuildInvitationEvent(10, 71, "a@b.c", "A", "W", "C", "2026-11-20", "H")

	assert.Equal(t, EventGuestInvitation, event.Type)
	assert.Equal(t, 0, event.RetryCount)
	assert.Equal(t, 3, event.MaxRetries)
	assert.False(t, event.Timestamp.IsZero())
}
