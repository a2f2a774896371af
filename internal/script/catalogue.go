package script

// ServiceID identifies an entry of the service catalogue.
type ServiceID string

const (
	ServiceChatbot     ServiceID = "chatbot"
	ServiceLandingPage ServiceID = "landing-page"
	ServiceAutomation  ServiceID = "automation"
	ServiceBudget      ServiceID = "budget"
	ServiceWhatsApp    ServiceID = "whatsapp"
	ServiceAll         ServiceID = "all"
)

// ServiceInfo is a catalogue card shown by service steps.
type ServiceInfo struct {
	ID          ServiceID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Features    []string  `json:"features"`
	Image       string    `json:"image"`
}

// BundleSavings is the badge shown on the complete package card.
const BundleSavings = "Economize 30% com o pacote completo"

var catalogue = []ServiceInfo{
	{
		ID:          ServiceChatbot,
		Name:        "Chatbot com IA",
		Description: "Atendimento automático 24/7 com inteligência artificial",
		Price:       897,
		Features: []string{
			"Responde perguntas automaticamente",
			"Aprende com conversas anteriores",
			"Integração com múltiplos canais",
			"Análise de sentimentos",
		},
		Image: "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?w=400&h=250&fit=crop",
	},
	{
		ID:          ServiceLandingPage,
		Name:        "Página de Vendas",
		Description: "Landing pages que convertem visitantes em clientes",
		Price:       1297,
		Features: []string{
			"Design otimizado para conversão",
			"Mobile-first responsivo",
			"Integração com analytics",
			"Testes A/B integrados",
		},
		Image: "https://images.unsplash.com/photo-1552664730-d307ca884978?w=400&h=250&fit=crop",
	},
	{
		ID:          ServiceAutomation,
		Name:        "Automações",
		Description: "Automatize processos e ganhe tempo",
		Price:       997,
		Features: []string{
			"Agendamento automático",
			"Fluxos de trabalho",
			"Integração com CRM",
			"Notificações inteligentes",
		},
		Image: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400&h=250&fit=crop",
	},
	{
		ID:          ServiceBudget,
		Name:        "Sistema de Orçamento",
		Description: "Gere orçamentos profissionais automaticamente",
		Price:       697,
		Features: []string{
			"Modelos personalizáveis",
			"Aprovação digital",
			"Pagamento integrado",
			"Relatórios detalhados",
		},
		Image: "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=400&h=250&fit=crop",
	},
	{
		ID:          ServiceWhatsApp,
		Name:        "Automação WhatsApp",
		Description: "Atendimento e vendas pelo WhatsApp",
		Price:       797,
		Features: []string{
			"Mensagens automáticas",
			"Respostas rápidas",
			"Catalogo integrado",
			"Multi-atendentes",
		},
		Image: "https://images.unsplash.com/photo-1611605698335-8b1569810432?w=400&h=250&fit=crop",
	},
	{
		ID:          ServiceAll,
		Name:        "Pacote Completo",
		Description: "Todas as soluções integradas",
		Price:       3497,
		Features: []string{
			"Todos os serviços acima",
			"Integração total",
			"Suporte prioritário",
			"Treinamento completo",
			"Desconto especial",
		},
		Image: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=250&fit=crop",
	},
}

// Services returns a copy of the catalogue in display order.
func Services() []ServiceInfo {
	out := make([]ServiceInfo, len(catalogue))
	for i, svc := range catalogue {
		svc.Features = append([]string(nil), svc.Features...)
		out[i] = svc
	}
	return out
}

// LookupService finds a catalogue entry by ID.
func LookupService(id ServiceID) (ServiceInfo, bool) {
	for _, svc := range catalogue {
		if svc.ID == id {
			svc.Features = append([]string(nil), svc.Features...)
			return svc, true
		}
	}
	return ServiceInfo{}, false
}
