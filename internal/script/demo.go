package script

import "time"

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// demoSteps is the sales conversation shown by the PageBot demo. The QR code and
// the "IA" wording are illustrative only.
var demoSteps = []Step{
	// Apresentação
	{Type: TypeText, Content: "Olá! 👋 Sou o atendente da Norte Digital", IsBot: true, Delay: ms(800)},
	{Type: TypeText, Content: "Oferecemos soluções completas de automação para seu negócio. Como posso te ajudar hoje?", IsBot: true, Delay: ms(1200)},

	// Menu principal
	{
		Type:    TypeOptions,
		Content: "Selecione um serviço para saber mais:",
		IsBot:   true,
		Options: []string{
			"🤖 Chatbot com IA",
			"🌐 Página de Vendas",
			"⚡ Automações",
			"💰 Sistema de Orçamento",
			"💬 WhatsApp Automático",
			"🎯 Ver Pacote Completo",
			"👤 Falar com humano",
		},
		Delay: ms(1000),
	},
	{Type: TypeText, Content: "🤖 Chatbot com IA", IsBot: false, Delay: ms(1500)},

	// Chatbot
	{Type: TypeService, IsBot: true, Service: ServiceChatbot, Delay: ms(800)},
	{Type: TypeText, Content: "Deseja ver mais detalhes sobre este serviço?", IsBot: true, Delay: ms(1000)},
	{Type: TypeOptions, IsBot: true, Options: []string{"Ver orçamento", "Ver outro serviço", "Falar com humano"}, Delay: ms(500)},
	{Type: TypeText, Content: "Ver orçamento", IsBot: false, Delay: ms(1500)},
	{Type: TypeQuote, Content: "Chatbot com IA - Setup Completo", Price: 897, IsBot: true, Delay: ms(1500)},

	// Outros serviços
	{Type: TypeText, Content: "Gostaria de ver outros serviços que oferecemos?", IsBot: true, Delay: ms(1000)},
	{Type: TypeOptions, IsBot: true, Options: []string{"Sim, mostrar tudo", "Não, apenas este"}, Delay: ms(500)},
	{Type: TypeText, Content: "Sim, mostrar tudo", IsBot: false, Delay: ms(1500)},
	{Type: TypeText, Content: "Aqui estão todos os nossos serviços disponíveis:", IsBot: true, Delay: ms(800)},
	{Type: TypeService, IsBot: true, Service: ServiceLandingPage, Delay: ms(800)},
	{Type: TypeService, IsBot: true, Service: ServiceAutomation, Delay: ms(800)},
	{Type: TypeService, IsBot: true, Service: ServiceBudget, Delay: ms(800)},
	{Type: TypeService, IsBot: true, Service: ServiceWhatsApp, Delay: ms(800)},
	{Type: TypeService, IsBot: true, Service: ServiceAll, Delay: ms(1000)},

	// Pergunta final
	{Type: TypeText, Content: "Qual serviço mais te interessou? Posso gerar um orçamento detalhado.", IsBot: true, Delay: ms(1200)},
	{Type: TypeOptions, IsBot: true, Options: []string{"Pacote Completo", "Chatbot com IA", "Landing Page", "Ver todos os preços"}, Delay: ms(800)},
	{Type: TypeText, Content: "Pacote Completo", IsBot: false, Delay: ms(1500)},
	{Type: TypeQuote, Content: "Pacote Completo Norte Digital", Price: 3497, IsBot: true, Delay: ms(1500)},

	// Pagamento
	{Type: TypeText, Content: "Para garantir as condições especiais, gerei um QR Code para pagamento:", IsBot: true, Delay: ms(1200)},
	{Type: TypeQRCode, Content: "Pagamento PIX", IsBot: true, Delay: ms(1500)},

	// CTA
	{Type: TypeText, Content: "Prefere falar diretamente com nossa equipe? 💬", IsBot: true, Delay: ms(1000)},
	{Type: TypeCTA, Content: "Continuar no WhatsApp", IsBot: true, Delay: ms(800)},
}

var demo = MustNew(demoSteps)

// Demo returns the built-in PageBot sales script.
func Demo() *Script {
	return demo
}
