package catalog

import "github.com/gosimple/slug"

// Data agrupa el catálogo estático compilado en el binario.
type Data struct {
	Products    []Product
	Featured    FeaturedProduct
	Categories  []Category
	Breeds      []Breed
	Promotions  []Promotion
	Banners     []Banner
	TopPicks    []TopPick
	TrustBadges []TrustBadge
}

func price(euros, cents int64) *Money {
	m := Euros(euros, cents)
	return &m
}

// Seed devuelve una copia nueva del catálogo estático en cada llamada,
// así ningún consumidor puede mutar el dato compartido.
func Seed() Data {
	products := []Product{
		{
			ID: 1, Name: "OmegaPure Paste", Brand: "VetNature",
			Price: Euros(24, 99), OriginalPrice: price(29, 99),
			Rating: 4.8, Reviews: 1243, Weight: "100g",
			Tags:  []string{"Omega-3", "Skin & Coat"},
			Badge: "Best Seller", BadgeColor: "#FF6B6B",
			Emoji: "🐟", Color: "#E3F2FD",
		},
		{
			ID: 2, Name: "ProBiotic+ Gut Care", Brand: "FelineWell",
			Price:  Euros(19, 99),
			Rating: 4.6, Reviews: 856, Weight: "60 chews",
			Tags:  []string{"Probiotics", "Immunity"},
			Badge: "New", BadgeColor: "#4CAF50",
			Emoji: "🌿", Color: "#E8F5E9",
			IsFavorite: true,
		},
		{
			ID: 3, Name: "Joint Flex Senior", Brand: "PawVital",
			Price: Euros(29, 99), OriginalPrice: price(34, 99),
			Rating: 4.7, Reviews: 642, Weight: "90 tabs",
			Tags:  []string{"Joint Health"},
			Badge: "Sale", BadgeColor: "#FF9800",
			Emoji: "💪", Color: "#FFF3E0",
		},
		{
			ID: 4, Name: "CalmPaws Drops", Brand: "ZenPet",
			Price:  Euros(32, 99),
			Rating: 4.4, Reviews: 318, Weight: "30ml",
			Tags:  []string{"Calming"},
			Emoji: "🧘", Color: "#F0FFF4",
		},
		{
			ID: 5, Name: "Multi-Vita Bites", Brand: "VetNature",
			Price:  Euros(14, 99),
			Rating: 4.5, Reviews: 1020, Weight: "120 bites",
			Tags:  []string{"Vitamins", "Immunity"},
			Emoji: "💊", Color: "#FCE4EC",
			IsFavorite: true,
		},
		{
			ID: 6, Name: "SilkCoat Salmon Oil", Brand: "FelineWell",
			Price:  Euros(21, 49),
			Rating: 4.2, Reviews: 275, Weight: "250ml",
			Tags:  []string{"Omega-3", "Skin & Coat"},
			Emoji: "🐠", Color: "#E1F5FE",
		},
		{
			ID: 7, Name: "ImmunoBoost Powder", Brand: "PawVital",
			Price: Euros(26, 99), OriginalPrice: price(31, 99),
			Rating: 4.3, Reviews: 190, Weight: "150g",
			Tags:  []string{"Immunity", "Vitamins"},
			Badge: "Sale", BadgeColor: "#FF9800",
			Emoji: "🛡️", Color: "#EDE7F6",
		},
		{
			ID: 8, Name: "HairBall Relief Gel", Brand: "ZenPet",
			Price:  Euros(12, 99),
			Rating: 4.1, Reviews: 512, Weight: "70g",
			Tags:  []string{"Probiotics"},
			Emoji: "🧶", Color: "#FFF8E1",
		},
	}
	for i := range products {
		products[i].Slug = slug.Make(products[i].Name)
	}

	featuredBase := products[0]
	featuredBase.Tags = append([]string(nil), featuredBase.Tags...)

	return Data{
		Products: products,
		Featured: FeaturedProduct{
			Product:       featuredBase,
			Subtitle:      "Omega-3 & 6 paste for a shiny coat",
			CategoryLabel: "Cat Supplement · Paste",
			Sizes:         []string{"50g", "100g", "200g"},
			DefaultSize:   "100g",
			Description: "A tasty malt-free paste rich in fish oil that supports healthy skin, " +
				"reduces shedding and gives your cat a glossy coat.",
			Ingredients: "Salmon oil (42%), linseed oil, brewer's yeast, vitamin E, biotin, zinc.",
			HowToUse: "Give 2 cm of paste per 4 kg of body weight daily, directly or mixed " +
				"into food.",
			KeyBenefits: []Benefit{
				{Emoji: "✨", Text: "Shiny, healthy coat"},
				{Emoji: "🧴", Text: "Reduces dry, flaky skin"},
				{Emoji: "🪮", Text: "Less shedding and hairballs"},
				{Emoji: "❤️", Text: "Supports heart health"},
			},
			SuitableFor: []string{"Adult cats", "Senior cats", "Long-haired breeds"},
			SampleReviews: []Review{
				{Name: "Sarah M.", Stars: 5, Text: "My Persian loves this! Her coat is so shiny now. 100% recommend!", Date: "2 days ago"},
				{Name: "James K.", Stars: 5, Text: "Our Maine Coon was shedding a lot. After 2 weeks on this paste, massive improvement.", Date: "1 week ago"},
				{Name: "Lena T.", Stars: 4, Text: "Great product, just takes a while for cats to get used to the taste.", Date: "2 weeks ago"},
			},
			Quality: []QualityBadge{
				{Icon: "🌿", Label: "Natural"},
				{Icon: "🔬", Label: "Lab Tested"},
				{Icon: "🚫", Label: "No Additives"},
				{Icon: "✅", Label: "Vet Approved"},
			},
			HowToSteps: []HowToStep{
				{Step: "1", Text: "Open the tube and remove cap"},
				{Step: "2", Text: "Squeeze 1–2cm onto food or paw"},
				{Step: "3", Text: "Let your cat lick it off"},
				{Step: "4", Text: "Use daily for best results"},
			},
		},
		Categories: []Category{
			{ID: 1, Name: "Cats", Emoji: "🐱", Color: "#FFF3E0", Accent: "#FF9800"},
			{ID: 2, Name: "Dogs", Emoji: "🐶", Color: "#E3F2FD", Accent: "#2196F3"},
			{ID: 3, Name: "Birds", Emoji: "🦜", Color: "#E8F5E9", Accent: "#4CAF50"},
			{ID: 4, Name: "Small Pets", Emoji: "🐹", Color: "#FCE4EC", Accent: "#E91E63"},
			{ID: 5, Name: "Fish", Emoji: "🐠", Color: "#E1F5FE", Accent: "#03A9F4"},
		},
		Breeds: []Breed{
			{ID: 1, Name: "Persian", Emoji: "😺", Description: "Long coat care", Color: "#FFF8E1"},
			{ID: 2, Name: "Maine Coon", Emoji: "🦁", Description: "Joint support", Color: "#EFEBE9"},
			{ID: 3, Name: "Siamese", Emoji: "🐈", Description: "Vocal & active", Color: "#ECEFF1"},
			{ID: 4, Name: "British Shorthair", Emoji: "🐱", Description: "Weight control", Color: "#E8EAF6"},
			{ID: 5, Name: "Ragdoll", Emoji: "😻", Description: "Gentle digestion", Color: "#F3E5F5"},
			{ID: 6, Name: "Bengal", Emoji: "🐆", Description: "High energy", Color: "#FFF3E0"},
		},
		Promotions: []Promotion{
			{ID: 1, Title: "40% OFF", Subtitle: "Omega-3 range", Description: "Use code PAWS40", Emoji: "🐟", Gradient: "linear-gradient(135deg, #667eea, #764ba2)", TextColor: "#FFFFFF"},
			{ID: 2, Title: "Buy 2 Get 1", Subtitle: "Probiotics", Description: "Mix & match", Emoji: "🌿", Gradient: "linear-gradient(135deg, #43e97b, #38f9d7)", TextColor: "#1B5E20"},
			{ID: 3, Title: "Free Gift", Subtitle: "Orders over €50", Description: "Treat pouch included", Emoji: "🎁", Gradient: "linear-gradient(135deg, #fa709a, #fee140)", TextColor: "#4A148C"},
		},
		Banners: []Banner{
			{ID: 1, Headline: "Happy cats, healthy coats", Sub: "Vet-approved omega supplements", Emoji: "⭐", ImgEmoji: "😸", Bg: "#E3F2FD"},
			{ID: 2, Headline: "Support every joint", Sub: "Senior formulas for active lives", Emoji: "💪", ImgEmoji: "🐈", Bg: "#FFF3E0"},
		},
		TopPicks: []TopPick{
			{ProductID: 1, Name: "OmegaPure Paste", Emoji: "🐟", Price: Euros(24, 99), Tag: "Skin & Coat", Color: "#E3F2FD", Badge: "Best Seller"},
			{ProductID: 2, Name: "ProBiotic+", Emoji: "🌿", Price: Euros(19, 99), Tag: "Gut Health", Color: "#E8F5E9", Badge: "New"},
			{ProductID: 3, Name: "Joint Flex", Emoji: "💪", Price: Euros(29, 99), Tag: "Senior Cats", Color: "#FFF3E0", Badge: "Sale"},
			{ProductID: 4, Name: "CalmPaws", Emoji: "🧘", Price: Euros(32, 99), Tag: "Anxiety Relief", Color: "#F0FFF4"},
		},
		TrustBadges: []TrustBadge{
			{Icon: "🚚", Label: "Free Delivery", Sub: "Over €35"},
			{Icon: "🔬", Label: "Vet Approved", Sub: "All products"},
			{Icon: "↩️", Label: "Easy Returns", Sub: "30 days"},
			{Icon: "🔒", Label: "Secure Pay", Sub: "SSL encrypted"},
		},
	}
}
