package service

import "fmt"

func confirmationEmailTemplate(confirmURL, appName string) (string, string) {
	subject := fmt.Sprintf("Confirm your email for %s", appName)
	body := fmt.Sprintf(`Thanks for signing up! Please confirm your email address by clicking this link:
%s

You won't be able to sign in until your email is confirmed.

This link expires in 24 hours.

If you didn't create an account, you can safely ignore this email.

Best,
The %s Team`, confirmURL, appName)

	return subject, body
}

func passwordResetEmailTemplate(resetURL, appName string) (string, string) {
	subject := fmt.Sprintf("Reset your password for %s", appName)
	body := fmt.Sprintf(`You requested to reset your password. Click this link to choose a new one:
%s

This link expires in 1 hour and can only be used once.

If you didn't request this, you can safely ignore this email. Your password won't be changed.

Best,
The %s Team`, resetURL, appName)

	return subject, body
}

func welcomeEmailTemplate(name, profileURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Hi %s,

Your email is confirmed and your account is active!

Complete your profile and take your first posture assessment: %s

If you have questions, reach out to our support team.

Best,
The %s Team`, name, profileURL, appName)

	return subject, body
}

func accountDeletedEmailTemplate(name, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s account has been deleted", appName)
	body := fmt.Sprintf(`Hi %s,

Your account has been permanently deleted from %s.

All your data, including your profile, assessments, exercise logs, and progress photos, has been removed from our systems.

If you didn't request this deletion, please contact our support team immediately, though we won't be able to recover your account.

We're sorry to see you go. If you change your mind, you're welcome to create a new account anytime.

Best,
The %s Team`, name, appName, appName)

	return subject, body
}
