package whatsapp

import "fmt"

// ContactMessage opens a generic conversation with the agency.
const ContactMessage = "Olá! Gostaria de saber mais sobre os serviços da Norte Digital."

// DemoCTAMessage is the text behind the demo's "Continuar no WhatsApp" button.
const DemoCTAMessage = "Olá! Vim pelo site e gostaria de saber mais sobre os serviços da Norte Digital"

// Budget is what the lead-capture chat collects before handing off.
type Budget struct {
	Name        string `json:"name"`
	ProjectName string `json:"project_name"`
	PainPoint   string `json:"pain_point"`
}

// BudgetMessage renders the quote request sent after lead capture.
func BudgetMessage(b Budget) string {
	return fmt.Sprintf(`Olá! Vim pelo site da Norte Digital.

Nome: %s
Projeto/Empresa: %s
Necessidade: %s

Gostaria de receber um orçamento.`, b.Name, b.ProjectName, b.PainPoint)
}

// ContactForm mirrors the fields of the site's contact form.
type ContactForm struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Message string
}

// ContactFormMessage renders the fallback text used when the e-mail relay is
// unavailable.
func ContactFormMessage(f ContactForm) string {
	return fmt.Sprintf("Olá Norte Digital!\n\n*Nome:* %s\n*Empresa:* %s\n*Email:* %s\n*Telefone:* %s\n\n*Mensagem:*\n%s",
		f.Name, f.Company, f.Email, f.Phone, f.Message)
}
