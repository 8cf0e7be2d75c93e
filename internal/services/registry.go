package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	ProjectService  ProjectService
	MessageService  MessageService
	FeedbackService FeedbackService
}
