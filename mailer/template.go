// Copyright (c) 2026 Lucas Pereira.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"fmt"
	"html/template"
)

// ResultEmailSubject is the subject line for draw result notifications
const ResultEmailSubject = "🎁 Amigo Chocolate - Your draw is ready!"

// TestEmailSubject is the subject line for configuration test emails
const TestEmailSubject = "🧪 Test - Amigo Chocolate"

// BuildResultEmail renders the notification sent to a giver after the draw,
// telling them who they drew and that person's chocolate preferences.
// Participant-supplied fields are HTML-escaped.
func BuildResultEmail(frontendURL, giverName, giverToken, recipientName string, preferredChocolate, dislikes *string) string {
	prefs := ""
	if preferredChocolate != nil && *preferredChocolate != "" {
		prefs += fmt.Sprintf(`
      <p style="margin: 0 0 5px 0; color: #8B4513; font-size: 14px; font-weight: bold;">🍫 Preferred chocolate:</p>
      <p style="margin: 0 0 15px 0; color: #333333; font-size: 16px;">%s</p>`,
			template.HTMLEscapeString(*preferredChocolate))
	}
	if dislikes != nil && *dislikes != "" {
		prefs += fmt.Sprintf(`
      <p style="margin: 0 0 5px 0; color: #8B4513; font-size: 14px; font-weight: bold;">🚫 Dislikes:</p>
      <p style="margin: 0; color: #333333; font-size: 16px;">%s</p>`,
			template.HTMLEscapeString(*dislikes))
	}
	if prefs != "" {
		prefs = fmt.Sprintf(`
    <div style="background-color: #FFF8DC; border: 1px solid #FFD700; border-radius: 8px; padding: 20px; margin: 20px 0;">%s
    </div>`, prefs)
	}

	return fmt.Sprintf(resultEmailBody,
		template.HTMLEscapeString(giverName),
		template.HTMLEscapeString(recipientName),
		prefs,
		template.HTMLEscapeString(frontendURL),
		template.HTMLEscapeString(giverToken),
	)
}

// BuildTestEmail renders the email used to verify SMTP configuration
func BuildTestEmail(frontendURL string) string {
	return fmt.Sprintf(testEmailBody, template.HTMLEscapeString(frontendURL))
}

const resultEmailBody = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Amigo Chocolate - Your draw is ready!</title>
</head>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f5f5f5;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border: 1px solid #dddddd;">
    <div style="background-color: #e8e8e8; padding: 30px 20px; text-align: center;">
      <h1 style="color: #333333; margin: 0; font-size: 28px;">🎁 Amigo Chocolate</h1>
    </div>
    <div style="padding: 30px 20px;">
      <h2 style="color: #8B4513; margin: 0 0 15px 0;">Hello, %s!</h2>
      <p style="color: #333333; font-size: 16px;">The Amigo Chocolate draw has been made! 🎉</p>
      <div style="background-color: #DC143C; padding: 20px; margin: 30px 0; text-align: center;">
        <p style="margin: 0; color: #ffffff; font-size: 18px; font-weight: bold;">
          Your chocolate friend is:<br>
          <span style="font-size: 24px;">%s</span>
        </p>
      </div>%s
      <div style="background-color: #FFE4E1; border-left: 4px solid #DC143C; padding: 15px; margin: 20px 0;">
        <p style="margin: 0; color: #8B4513; font-size: 14px;">
          🔒 <strong>Remember:</strong> keep it a secret! Don't tell anyone who you drew.
        </p>
      </div>
      <p style="color: #333333; font-size: 16px;">Your personal link shows the result any time:</p>
      <p style="text-align: center; margin: 20px 0;">
        <a href="%s/participante/%s" style="display: inline-block; background-color: #DC143C; color: #ffffff; padding: 12px 30px; text-decoration: none; font-weight: bold;">See My Result</a>
      </p>
    </div>
  </div>
</body>
</html>`

const testEmailBody = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Test - Amigo Chocolate</title>
</head>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f5f5f5;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border: 1px solid #dddddd;">
    <div style="background-color: #e8e8e8; padding: 30px 20px; text-align: center;">
      <h1 style="color: #333333; margin: 0; font-size: 28px;">🎁 Amigo Chocolate</h1>
    </div>
    <div style="padding: 30px 20px;">
      <h2 style="color: #8B4513; margin: 0 0 15px 0;">This is a test email 🧪</h2>
      <p style="color: #333333; font-size: 16px;">If you received this message, outbound email is configured correctly. ✅</p>
      <p style="text-align: center; margin: 20px 0;">
        <a href="%s" style="display: inline-block; background-color: #DC143C; color: #ffffff; padding: 12px 30px; text-decoration: none; font-weight: bold;">Open the App</a>
      </p>
    </div>
  </div>
</body>
</html>`
