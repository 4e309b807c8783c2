package catalog

// NewDefault returns the storefront's stock catalog.
func NewDefault() *Static {
	return NewStatic(defaultProducts, defaultCategories)
}

var defaultProducts = []Product{
	// Womenswear
	{
		ID:          1,
		Name:        "Silk Blend Blouse",
		Price:       "$129.99",
		ImageURL:    "https://img.freepik.com/free-photo/elegant-woman-blouse-posing_1303-10853.jpg?w=826",
		Category:    "Womenswear",
		Description: "An effortlessly elegant blouse crafted from a luxurious silk blend. Features a relaxed fit and concealed buttons for a clean, minimalist look.",
	},
	{
		ID:          4,
		Name:        "Tailored Wide-Leg Trousers",
		Price:       "$149.99",
		ImageURL:    "https://img.freepik.com/free-photo/fashion-woman-with-brown-suit-hat_1303-16279.jpg?w=826",
		Category:    "Womenswear",
		Description: "Expertly tailored from a fine wool blend, these trousers offer a sophisticated wide-leg silhouette. Perfect for creating a polished look.",
	},
	{
		ID:          7,
		Name:        "Cashmere Crewneck",
		Price:       "$249.99",
		ImageURL:    "https://img.freepik.com/free-photo/young-woman-knitted-sweater-isolated_1303-20700.jpg?w=826",
		Category:    "Womenswear",
		Description: "Indulge in the unparalleled softness of pure cashmere. This timeless crewneck sweater is a wardrobe investment for seasons to come.",
	},
	{
		ID:          8,
		Name:        "Structured-Shoulder Blazer",
		Price:       "$299.99",
		ImageURL:    "https://img.freepik.com/free-photo/fashionable-woman-wearing-a-black-suit_1303-16322.jpg?w=826",
		Category:    "Womenswear",
		Description: "A statement of power and style. Our blazer features sharp tailoring and structured shoulders for a commanding presence.",
	},

	// Menswear
	{
		ID:          2,
		Name:        "Fine-Knit Polo Shirt",
		Price:       "$119.99",
		ImageURL:    "https://img.freepik.com/free-photo/man-wearing-a-black-mockup-polo-shirt_53876-98782.jpg?w=826",
		Category:    "Menswear",
		Description: "A modern classic, our polo is crafted from 100% extra-fine merino wool for a soft, breathable, and comfortable fit. Perfect for any season.",
	},
	{
		ID:          3,
		Name:        "Leather Bomber Jacket",
		Price:       "$499.99",
		ImageURL:    "https://img.freepik.com/free-photo/handsome-man-posing_144627-9381.jpg?w=826",
		Category:    "Menswear",
		Description: "Elevate your outerwear with this luxurious lambskin leather bomber jacket. Featuring a clean, minimalist design and premium hardware for a refined finish.",
	},
	{
		ID:          9,
		Name:        "Pleated Tapered Trousers",
		Price:       "$189.99",
		ImageURL:    "https://img.freepik.com/free-photo/full-shot-man-posing-with-hand-his-pocket_23-2148815121.jpg?w=826",
		Category:    "Menswear",
		Description: "Engineered for the modern man. These trousers feature sharp pleats and a tapered leg for a clean, contemporary silhouette.",
	},
	{
		ID:          10,
		Name:        "Classic Trench Coat",
		Price:       "$599.99",
		ImageURL:    "https://img.freepik.com/free-photo/stylish-man-trench-coat-city_1303-30514.jpg?w=826",
		Category:    "Menswear",
		Description: "A timeless icon of style. Our trench coat is crafted from durable, water-resistant cotton gabardine and features a classic, structured silhouette.",
	},

	// Footwear
	{
		ID:          5,
		Name:        "Derby Shoes",
		Price:       "$229.99",
		ImageURL:    "https://img.freepik.com/free-photo/brown-leather-shoes_1203-8025.jpg?w=1480",
		Category:    "Footwear",
		Description: "Handcrafted from full-grain calfskin leather, these Derby shoes offer timeless style and exceptional comfort. A versatile choice for any occasion.",
	},
	{
		ID:          11,
		Name:        "Premium Leather Sneakers",
		Price:       "$199.99",
		ImageURL:    "https://img.freepik.com/free-photo/pair-white-sneakers_1203-7529.jpg?w=1480",
		Category:    "Footwear",
		Description: "Clean, versatile, and luxurious. These minimalist sneakers are handcrafted from supple Italian leather for a premium look and feel.",
	},
	{
		ID:          12,
		Name:        "Jodhpur Boots",
		Price:       "$279.99",
		ImageURL:    "https://img.freepik.com/free-photo/brown-suede-chelsea-boots-men-s-fashion-shoot_53876-116524.jpg?w=826",
		Category:    "Footwear",
		Description: "A modern staple, our Jodhpur boots are made from rich, polished leather and feature a durable sole for all-day comfort.",
	},

	// Accessories
	{
		ID:          6,
		Name:        "Full-Grain Leather Belt",
		Price:       "$79.99",
		ImageURL:    "https://img.freepik.com/free-psd/classic-leather-belt-isolated-transparent-background_191095-23588.jpg?w=1380",
		Category:    "Accessories",
		Description: "The perfect finishing touch. This belt is crafted from premium full-grain leather and features a polished silver-tone buckle.",
	},
	{
		ID:          13,
		Name:        "Leather Portfolio",
		Price:       "$349.99",
		ImageURL:    "https://img.freepik.com/free-photo/still-life-business-objects_23-2147659178.jpg?w=826",
		Category:    "Accessories",
		Description: "A sophisticated companion for the modern professional. This portfolio is crafted from smooth calfskin leather and has space for a laptop and documents.",
	},
	{
		ID:          14,
		Name:        "Swiss Movement Watch",
		Price:       "$799.99",
		ImageURL:    "https://img.freepik.com/free-photo/close-up-watch_23-2148924080.jpg?w=826",
		Category:    "Accessories",
		Description: "A masterpiece of horology. This automatic watch features a sapphire crystal, a Swiss movement, and a stainless steel case for enduring style.",
	},
}

var defaultCategories = []Category{
	{
		Name:     "Womenswear",
		ImageURL: "https://img.freepik.com/free-photo/gorgeous-woman-posing-against-wall_1303-10870.jpg?w=826",
	},
	{
		Name:     "Menswear",
		ImageURL: "https://img.freepik.com/free-photo/handsome-confident-stylish-hipster-lambersexual-model_158538-13426.jpg?w=826",
	},
	{
		Name:     "Footwear",
		ImageURL: "https://img.freepik.com/free-photo/men-s-shoes_1203-8675.jpg?w=1480",
	},
	{
		Name:     "Accessories",
		ImageURL: "https://img.freepik.com/free-photo/flat-lay-watch-glasses-with-copy-space_23-2148352614.jpg?w=1480",
	},
}
