package mailer

import "text/template"

var verificationTemplate = template.Must(template.New("verification").Parse(`Hi {{.Name}},

Thanks for signing up. This is your verification code:

{{.Code}}

Enter it on the verification page to confirm your email address.
The code is valid for 24 hours.

If you did not create an account, you can ignore this email.
`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`Hi {{.Name}},

Your email address is verified and your account is ready to use.

Welcome aboard!
`))

var passwordResetTemplate = template.Must(template.New("password-reset").Parse(`Hi {{.Name}},

We received a request to reset your password. Click the link below to choose
a new one:

{{.ResetURL}}

The link is valid for 1 hour. If you did not request a password reset, you
can ignore this email.
`))

var resetSuccessTemplate = template.Must(template.New("reset-success").Parse(`Hi {{.Name}},

Your password was changed successfully.

If you did not make this change, please contact support immediately.
`))
