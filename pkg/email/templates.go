package email

import (
	"fmt"
)

// BuildOTPEmail creates an OTP verification email message.
// language: "es" for Spanish or "en" for English
func BuildOTPEmail(email string, code string, language string, expiryMinutes int) Message {
	const appName = "Orienta"

	var subject, greeting, line1, line2, line3, codeLabel, expires, closing string

	if language == "es" {
		subject = "Tu código de verificación | Orienta"
		greeting = "Hola,"
		line1 = "Recibimos una solicitud para verificar tu identidad en Orienta."
		line2 = "Usa el siguiente código para confirmar tu correo:"
		line3 = "Si no solicitaste este código, ignora este correo."
		codeLabel = "Código de verificación:"
		expires = fmt.Sprintf("Este código es válido por %d minutos.", expiryMinutes)
		closing = "El equipo de Orienta"
	} else {
		subject = "Your Verification Code | Orienta"
		greeting = "Hi,"
		line1 = "You've requested to verify your identity for accessing Orienta."
		line2 = "Please use the code below to verify your email:"
		line3 = "If you didn't request this, please ignore this email."
		codeLabel = "Verification Code:"
		expires = fmt.Sprintf("This code is valid for %d minutes.", expiryMinutes)
		closing = "The Orienta Team"
	}

	textBody := fmt.Sprintf(`%s

%s

%s

%s

%s

%s

%s

%s`, greeting, line1, line2, codeLabel, code, expires, line3, closing)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">%s</h2>
    <p>%s</p>
    <p>%s</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">%s</span><br>
        <span style="font-size: 36px; font-weight: bold; font-family: monospace; color: #000; letter-spacing: 4px;">%s</span>
    </p>
    <p style="color: #ef4444; font-size: 14px; text-align: center;">%s</p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
        %s
    </p>
</body>
</html>`, greeting, line1, line2, codeLabel, code, expires, line3, closing)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPasswordChangedEmail notifies a user that their password was changed.
func BuildPasswordChangedEmail(email string, firstName string) Message {
	if firstName == "" {
		firstName = "usuario"
	}

	subject := "Tu contraseña fue actualizada | Orienta"

	textBody := fmt.Sprintf(`Hola %s,

Tu contraseña de Orienta fue cambiada correctamente.

Si no realizaste este cambio, contacta al soporte de tu institución de inmediato.

El equipo de Orienta`, firstName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hola %s,</h2>
    <p>Tu contraseña de Orienta fue cambiada correctamente.</p>
    <p style="color: #ef4444;">Si no realizaste este cambio, contacta al soporte de tu institución de inmediato.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">El equipo de Orienta</p>
</body>
</html>`, firstName)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
