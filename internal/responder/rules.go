package responder

import "regexp"

// LeadCapturePrompt opens the budget flow after a pricing question.
const LeadCapturePrompt = "💰 **VAMOS CRIAR SEU ORÇAMENTO PERSONALIZADO!**\n\nPara começarmos, me diga seu nome 😊"

// GreetingReply answers salutations.
const GreetingReply = "👋 **Seja muito bem-vindo(a)!**\n\nNa **Norte Digital**, criamos soluções digitais que trabalham 24h para transformar visitantes em clientes.\n\n**Automatize. Escale. Venda mais.**\n\nNo que posso ajudar você hoje?"

// DefaultRules returns the rule cascade in priority order. Order matters:
// "empresa" is caught by the about rule before the institutional-site rule, and
// "quanto tempo" is a pricing question because "quanto" is checked first.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: CategoryGreeting,
			Pattern:  regexp.MustCompile(`(?i)^(olá|ola|oi|bom\s*dia|boa\s*tarde|boa\s*noite|hello|hey)`),
			Response: GreetingReply,
		},
		{
			Category: CategoryAbout,
			Pattern:  regexp.MustCompile(`(?i)(sobre|quem\s*são|norte\s*digital|empresa)`),
			Response: "🏢 **SOBRE A NORTE DIGITAL**\n\nSomos especialistas em **soluções digitais completas** para negócios que querem crescer rápido.\n\n🔹 **Automações inteligentes**\n🔹 **Sites que convertem**\n🔹 **Chatbots 24/7**\n🔹 **Landing pages otimizadas**\n\n🚀 *Transformamos visitantes em clientes, todos os dias.*",
		},
		{
			Category:          CategoryPricing,
			Pattern:           regexp.MustCompile(`(?i)(orçamento|valor|preço|proposta|custo|quanto)`),
			Response:          LeadCapturePrompt,
			StartsLeadCapture: true,
		},
		{
			Category: CategoryLandingPage,
			Pattern:  regexp.MustCompile(`(?i)(landing\s*page|landingpage|lp)`),
			Response: "🌐 **LANDING PAGES QUE CONVERTEM**\n\nCriamos páginas de alta conversão para:\n• Capturar leads\n• Vender produtos\n• Promover lançamentos\n• Gerar agendamentos\n\n💰 **Investimento:** A partir de R$ 1.500\n⏱️ **Prazo:** 5-7 dias úteis\n\n✨ *Cada pixel pensado para converter!*",
		},
		{
			Category: CategorySite,
			Pattern:  regexp.MustCompile(`(?i)(site|sites|institucional|empresa|presença)`),
			Response: "🚀 **SITES INSTITUCIONAIS PROFISSIONAIS**\n\nSites completos que apresentam sua empresa com credibilidade:\n• Até 10 páginas\n• Sistema administrativo\n• Design responsivo\n• SEO otimizado\n\n💰 **Investimento:** A partir de R$ 3.000\n⏱️ **Prazo:** 10-15 dias úteis\n\n💼 *Sua presença digital de alta qualidade!*",
		},
		{
			Category: CategoryAutomation,
			Pattern:  regexp.MustCompile(`(?i)(automaç[aã]o|automatizar|bot|robô|automa)`),
			Response: "🤖 **AUTOMAÇÕES INTELIGENTES**\n\nAutomatize processos e ganhe tempo:\n• Chatbots personalizados\n• Fluxos de e-mail\n• Processos internos\n• Integrações API\n\n💰 **Investimento:** Sob consulta\n⏱️ **Prazo:** 7-14 dias úteis\n\n⚡ *Faça mais em menos tempo!*",
		},
		{
			Category: CategoryChatbot,
			Pattern:  regexp.MustCompile(`(?i)(pagebot|chatbot|whatsapp\s*bot|atendimento)`),
			Response: "💬 **CHATBOTS 24/7 - PAGEBOT**\n\nAtenda clientes automaticamente:\n• WhatsApp Business\n• Site e redes sociais\n• Qualificação de leads\n• Agendamentos automáticos\n\n💰 **Investimento:** A partir de R$ 300/mês\n⏱️ **Prazo:** 3-7 dias úteis\n\n🤖 *Atendimento humano quando você não pode!*",
		},
		{
			Category: CategoryTimeline,
			Pattern:  regexp.MustCompile(`(?i)(tempo|prazo|entrega|quando|quanto\s*tempo)`),
			Response: "⏱️ **PRAZOS DE ENTREGA**\n\n🌐 **Landing Pages:** 5-7 dias úteis\n🚀 **Sites Institucionais:** 10-15 dias úteis\n🤖 **Automações:** 7-14 dias úteis\n💬 **Chatbots:** 3-7 dias úteis\n\n⚡ *Metodologia ágil para entregas rápidas!*",
		},
		{
			Category: CategoryHuman,
			Pattern:  regexp.MustCompile(`(?i)(falar|especialista|humano|consultor|whatsapp|contato)`),
			Response: "📞 **FALE COM NOSSO ESPECIALISTA**\n\n💬 **WhatsApp:** (11) 99982-5835\n\n🕒 **Horário:**\nSeg-Sex: 8h às 18h\nSáb: 9h às 12h\n\n✨ *Vamos encontrar a solução perfeita para você!*",
		},
		{
			Category: CategoryThanks,
			Pattern:  regexp.MustCompile(`(?i)(obrigad[ao]|valeu|grato|agradeço)`),
			Response: "🤝 **Obrigado pelo contato!**\n\nFico feliz em ajudar!\n\nQualquer dúvida, estou aqui! 🚀",
		},
	}
}

// DefaultFallbacks are used when no rule matches; one is picked at random.
func DefaultFallbacks() []string {
	return []string{
		"🤔 **Pergunta interessante!**\n\nPosso te ajudar com:\n• Informações sobre serviços\n• Orçamentos personalizados\n• Prazos de entrega\n• Falar com especialista",
		"💡 **Vamos focar no que importa!**\n\nConte-me sobre seu projeto ou dúvida específica.",
		"🚀 **Pronto para transformar seu negócio?**\n\nMe pergunte sobre landing pages, sites, automações ou chatbots!",
	}
}
