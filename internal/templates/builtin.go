package templates

// Built-in bodies for the four studio notifications. Layout is kept
// deliberately simple; the storefront brand styling lives in the
// shared wrapper blocks.

const builtinHTML = `
{{define "header"}}
<div style="background:#fff5fa;padding:24px;font-family:sans-serif;color:#333;">
  <div style="max-width:640px;margin:auto;background:#fff;border-radius:12px;padding:24px;">
    <h2 style="color:#d63384;margin-top:0;">Miraara • Art &amp; Design</h2>
{{end}}

{{define "footer"}}
    <p style="font-size:12px;color:#777;margin-bottom:0;">&copy; {{year .SavedAt}} Miraara</p>
  </div>
</div>
{{end}}

{{define "contact_admin"}}
{{template "header" .}}
    <p>New contact form submission:</p>
    <table style="border-collapse:collapse;">
      <tr><td style="padding:6px;font-weight:600;">Name</td><td style="padding:6px;">{{.Name}}</td></tr>
      <tr><td style="padding:6px;font-weight:600;">Email</td><td style="padding:6px;">{{.Email}}</td></tr>
      <tr><td style="padding:6px;font-weight:600;">Phone</td><td style="padding:6px;">{{orDash .Phone}}</td></tr>
      <tr><td style="padding:6px;font-weight:600;">Subject</td><td style="padding:6px;">{{.Subject}}</td></tr>
    </table>
    <div style="background:#fff6fb;border-left:4px solid #ff99c8;padding:12px;margin-top:12px;">
      <p style="margin:0;">{{.Message}}</p>
    </div>
    <p style="font-size:13px;color:#777;">Saved at: {{formatTime .SavedAt}}</p>
{{template "footer" .}}
{{end}}

{{define "contact_auto_reply"}}
{{template "header" .}}
    <p>Thanks for reaching out, {{.Name}}!</p>
    <p>We have received your message and will reply within 1-2 business days.</p>
    <p><a href="https://miraara.in" style="color:#d63384;font-weight:600;">Explore Miraara</a></p>
{{template "footer" .}}
{{end}}

{{define "subscribe_admin"}}
{{template "header" .}}
    <p>New newsletter subscriber:</p>
    <p style="font-weight:600;">{{.Email}}</p>
    <p style="font-size:13px;color:#777;">Saved at: {{formatTime .SavedAt}}</p>
{{template "footer" .}}
{{end}}

{{define "subscribe_auto_reply"}}
{{template "header" .}}
    <p>Welcome to Miraara!</p>
    <p>You're on the list: expect updates, exclusive previews, and offers.</p>
    <p><a href="https://miraara.in" style="color:#d63384;font-weight:600;">Visit Miraara</a></p>
    <p style="font-size:12px;color:#888;">You can unsubscribe anytime.</p>
{{template "footer" .}}
{{end}}
`

const builtinText = `
{{define "contact_admin"}}New contact from {{.Name}}
Email: {{.Email}}
Phone: {{orDash .Phone}}
Subject: {{.Subject}}
Message: {{.Message}}
Saved at: {{formatTime .SavedAt}}
{{end}}

{{define "contact_auto_reply"}}Thanks for reaching out, {{.Name}}! We'll reply within 1-2 business days.
{{end}}

{{define "subscribe_admin"}}New subscriber: {{.Email}}
Saved at: {{formatTime .SavedAt}}
{{end}}

{{define "subscribe_auto_reply"}}Welcome to Miraara! You're on our subscriber list for updates and offers.
{{end}}
`
