package mailer

import "fmt"

func renderConfirmation(clientName, barberName, when string) (string, string) {
	subject := "Confirmación de tu cita en BARBER SHOP"
	html := fmt.Sprintf(`
        <html>
            <body>
                <p>Hola %s,</p>
                <p>Tu cita en BARBER SHOP ha sido confirmada.</p>
                <p><strong>Barbero:</strong> %s</p>
                <p><strong>Hora de la cita:</strong> %s</p>
                <p>¡Te esperamos!</p>
                <p>Saludos,<br>El equipo de BARBER SHOP</p>
            </body>
        </html>`, clientName, barberName, when)
	return subject, html
}

func renderCancellation(clientName, barberName, when string) (string, string) {
	subject := "Tu cita en BARBER SHOP ha sido cancelada"
	html := fmt.Sprintf(`
        <html>
            <body>
                <p>Hola %s,</p>
                <p>Tu cita en BARBER SHOP ha sido cancelada:</p>
                <p><strong>Barbero:</strong> %s</p>
                <p><strong>Hora de la cita:</strong> %s</p>
                <p>Favor de contactarse con BARBER SHOP</p>
                <p>Saludos,<br>El equipo de BARBER SHOP</p>
            </body>
        </html>`, clientName, barberName, when)
	return subject, html
}

func renderRecoveryCode(name string, code int) (string, string) {
	subject := "Recuperación de Contraseña - BARBER SHOP"
	html := fmt.Sprintf(`
        <html>
            <body>
                <p>Hola %s,</p>
                <p>Hemos recibido una solicitud para recuperar tu contraseña.
                Tu código de recuperación es el siguiente:</p>
                <div style="font-size: 18px; font-weight: bold; text-align: center;">%d</div>
                <p>Si no solicitaste este código, por favor ignora este correo.</p>
                <p>Saludos,<br>El equipo de BARBER SHOP</p>
            </body>
        </html>`, name, code)
	return subject, html
}
