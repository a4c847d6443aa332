package mq

import (
	"fmt"
	"html/template"
	"strings"
)

// 邀请邮件模板。字段全部来自 NotifyEvent，渲染失败按事件处理失败计。
var invitationTmpl = template.Must(template.New("invitation").Parse(`
<div style="max-width:600px;margin:0 auto;font-family:Georgia,serif;color:#4a3728;">
  <h2 style="text-align:center;color:#b76e79;">婚礼邀请函</h2>
  <p>亲爱的 {{.ToName}}：</p>
  <p>诚挚邀请您出席 <strong>{{.HostName}}</strong> 的婚礼 <strong>{{.WeddingName}}</strong>。</p>
  <table style="margin:16px auto;border-collapse:collapse;">
    <tr><td style="padding:4px 12px;">日期</td><td style="padding:4px 12px;"><strong>{{.WeddingDate}}</strong></td></tr>
    <tr><td style="padding:4px 12px;">城市</td><td style="padding:4px 12px;"><strong>{{.WeddingCity}}</strong></td></tr>
  </table>
  <p>期待与您共同见证这一美好时刻。</p>
  <p style="text-align:center;color:#b76e79;">—— {{.HostName}} 敬邀</p>
</div>
`))

// 关系请求通知模板
var relationshipTmpl = template.Must(template.New("relationship").Parse(`
<div style="max-width:600px;margin:0 auto;font-family:Georgia,serif;color:#4a3728;">
  <h2 style="text-align:center;color:#b76e79;">亲友关系请求</h2>
  <p>亲爱的 {{.ToName}}：</p>
  <p><strong>{{.RequesterName}}</strong> 希望把您添加为「{{.RelationLabel}}」。</p>
  <p>请登录应用确认或拒绝这条请求。请求 7 天内有效，过期后需要对方重新发起。</p>
</div>
`))

// RenderInvitation 渲染邀请邮件的主题和正文
func RenderInvitation(event NotifyEvent) (subject, htmlBody string, err error) {
	var sb strings.Builder
	if err := invitationTmpl.Execute(&sb, event); err != nil {
		return "", "", fmt.Errorf("failed to render invitation template: %w", err)
	}
	subject = fmt.Sprintf("婚礼邀请 | %s", event.WeddingName)
	return subject, sb.String(), nil
}

// RenderRelationshipRequest 渲染关系请求通知的主题和正文
func RenderRelationshipRequest(event NotifyEvent) (subject, htmlBody string, err error) {
	var sb strings.Builder
	if err := relationshipTmpl.Execute(&sb, event); err != nil {
		return "", "", fmt.Errorf("failed to render relationship template: %w", err)
	}
	subject = fmt.Sprintf("新的亲友关系请求 | 来自 %s", event.RequesterName)
	return subject, sb.String(), nil
}

// Render 按事件类型渲染邮件，消费端的统一入口
func Render(event NotifyEvent) (subject, htmlBody string, err error) {
	switch event.Type {
	case EventGuestInvitation:
		return RenderInvitation(event)
	case EventRelationshipRequest:
		return RenderRelationshipRequest(event)
	default:
		return "", "", fmt.Errorf("unknown notify event type: %s", event.Type)
	}
}
