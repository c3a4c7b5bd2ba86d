package dto

type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string
}

type UpdateCustomerInput struct {
	ID    string
	Name  string
	Email string
	Phone string
}
