package guide

import "time"

func defaultSections() []Section {
	return []Section{
		{
			ID:    SectionHero,
			Title: "Início",
			Messages: []string{
				"Olá! 👋 Seja bem-vindo à Norte Digital!",
				"Somos especialistas em criar soluções digitais que fazem sentido para o seu negócio.",
				"Posso te ajudar a entender como transformamos ideias em realidade digital.",
			},
			Options: []Option{
				{Text: "Site institucional (LP)", Action: ActionExplainLP},
				{Text: "Sistemas web", Action: ActionExplainSystems},
				{Text: "E-commerce", Action: ActionExplainEcommerce},
			},
			Position: BottomRight,
			Delay:    2 * time.Second,
		},
		{
			ID:    SectionServices,
			Title: "Serviços",
			Messages: []string{
				"Aqui é onde a mágica acontece! ✨",
				"Criamos soluções sob medida, pensando em cada detalhe do seu negócio.",
				"Quer saber mais sobre alguma solução específica?",
			},
			Options: []Option{
				{Text: "Ver casos reais", Action: ActionShowCases},
				{Text: "Processo criativo", Action: "explain_process"},
				{Text: "Conversar agora", Action: ActionOpenChat},
			},
			Position: BottomLeft,
			Delay:    time.Second,
		},
		{
			ID:    SectionPortfolio,
			Title: "Portfólio",
			Messages: []string{
				"Cada projeto é único! 🎨",
				"Aqui você vê como transformamos desafios em soluções criativas.",
				"Tem alguma ideia em mente? Posso te ajudar a visualizá-la.",
			},
			Options: []Option{
				{Text: "Ver projetos similares", Action: "similar_projects"},
				{Text: "Quanto custa?", Action: "explain_pricing"},
				{Text: "Tirar dúvidas", Action: ActionOpenChat},
			},
			Position: TopRight,
			Delay:    1500 * time.Millisecond,
		},
	}
}

var actionReplies = map[string]Message{
	ActionExplainLP: {
		Text: "Landing Pages e sites institucionais são sua vitrine digital! 🏢 Criamos experiências que convertem visitantes em clientes, com design estratégico e performance otimizada.",
		Options: []Option{
			{Text: "Ver exemplos", Action: "show_lp_examples"},
			{Text: "Falar sobre meu projeto", Action: ActionOpenChat},
		},
	},
	ActionExplainSystems: {
		Text: "Sistemas web sob medida automatizam seus processos! ⚙️ Desenvolvemos soluções escaláveis que resolvem problemas reais, desde CRMs internos até plataformas complexas.",
		Options: []Option{
			{Text: "Preciso automatizar algo", Action: "discuss_automation"},
			{Text: "Ver cases de sistemas", Action: "show_system_cases"},
		},
	},
	ActionExplainEcommerce: {
		Text: "E-commerce que vende mesmo! 🛍️ Criamos lojas virtuais com experiência de compra otimizada, integrações inteligentes e estratégias de conversão que aumentam suas vendas.",
		Options: []Option{
			{Text: "Quero vender online", Action: "discuss_ecommerce"},
			{Text: "Ver lojas criadas", Action: "show_ecommerce_examples"},
		},
	},
	ActionShowCases: {
		Text: "Que bom que quer ver cases reais! ✨ Vou te mostrar alguns projetos que transformaram negócios...",
		Options: []Option{
			{Text: "Continuar explorando", Action: "continue_exploring"},
			{Text: "Já tenho uma ideia", Action: ActionOpenChat},
		},
	},
}

var defaultReply = Message{
	Text: "Vou te ajudar com isso! 😊 Me conta um pouco mais sobre o que você precisa...",
	Options: []Option{
		{Text: "Continuar conversa", Action: ActionOpenChat},
		{Text: "Ver mais soluções", Action: "show_more"},
	},
}
