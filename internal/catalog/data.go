package catalog

import "github.com/phenrril/atelier/internal/domain"

// products is the full archive in display order. IDs are stable across the
// life of the process and unique; the slice is never written to after init.
var products = []domain.Product{
	{
		ID:       "h1",
		Name:     "Heavyweight Acid Wash Zip",
		Price:    185,
		Category: "Hoodies",
		Image:    "https://image.made-in-china.com/368f3j00gQOEAarGVHYy/Custom-Heavyweight-Embroidery-Patches-Distressed-Zipper-up-Hoodie-500GSM-Streetwear-Custom-Acid-Wash-Wholesale-1688-Fashion-Men-s-Hoodie-Clothing.webp",
		IsNew:    true,
		Details:  []string{"500GSM French Terry", "Distressed Zipper", "Acid Wash Finish", "Oversized Fit"},
	},
	{
		ID:       "h2",
		Name:     "Berserk Gothic Print",
		Price:    165,
		Category: "Hoodies",
		Image:    "https://img4.dhresource.com/webp/m/0x0/f3/albu/jc/n/12/ee4b8f73-56ce-4694-b1fb-3e73e225b880.jpg",
		Details:  []string{"Gothic Back Print", "Vintage Wash", "Drop Shoulder", "Kangaroo Pocket"},
	},
	{
		ID:       "h3",
		Name:     "Distressed Essential",
		Price:    145,
		Category: "Hoodies",
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT5tzyX7Wc7f1RCVBRttGbLfORwqPKugWv5BTj0fHuaKgYrJBrdYnJx5Zj_xOj-41yGDPs&usqp=CAU",
		Details:  []string{"Heavy Distressing", "Raw Hem", "Boxy Silhouette", "Faded Black"},
	},
	{
		ID:       "h4",
		Name:     "Void Black Pullover",
		Price:    120,
		Category: "Hoodies",
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcS8L6YTcIuxEe7QZZiM6m2STKC8CBq4zlQDFb6o28BpiVGfePo9d_E35hMX2vy_qJIeJ08&usqp=CAU",
		Details:  []string{"Jet Black Dye", "Double Lined Hood", "Relaxed Fit", "Minimalist"},
	},
	{
		ID:       "h5",
		Name:     "Oversized Street Hoodie",
		Price:    135,
		Category: "Hoodies",
		Image:    "https://m.media-amazon.com/images/I/61MVtibt-ZL.jpg",
		Details:  []string{"Street Staple", "Cotton Blend", "Ribbed Cuffs", "Standard Fit"},
	},
	{
		ID:       "h6",
		Name:     "Gothic Graphic Hoodie",
		Price:    155,
		Category: "Hoodies",
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT4ex0uvKQqIQoI5hmEOpNpRtPYf7UXA5ThUZ2KBMQc-kRtAj2eiu_q_rZCJGykWmYSCZk&usqp=CAU",
		IsNew:    true,
		Details:  []string{"Screen Printed Art", "Puff Print Details", "Heavyweight", "Limited Run"},
	},
	{
		ID:       "h7",
		Name:     "Vintage Wash Graphic",
		Price:    140,
		Category: "Hoodies",
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQp6hxr1nJQaqQN-igLyYcPiCeOCgjVIVx6uEsCYd7i3fmlFpLXDbj7iimIMH87GQ0S8as&usqp=CAU",
		Details:  []string{"Sun-faded Finish", "Soft Handfeel", "Retro Graphic", "Everyday Comfort"},
	},
	{
		ID:       "s1",
		Name:     "Archive Crewneck",
		Price:    110,
		Category: "Sweatshirts",
		Image:    "https://i.pinimg.com/736x/27/92/07/279207ab5d0cc638c0138812fae939dc.jpg",
		Details:  []string{"Loopback Jersey", "Dropped Shoulders", "Tight Collar", "Wide Body"},
	},
	{
		ID:       "s2",
		Name:     "Distressed Fleece Crew",
		Price:    125,
		Category: "Sweatshirts",
		Image:    "https://i.pinimg.com/1200x/a0/72/7c/a0727cd6ebd863c2088731500d31b7ab.jpg",
		Details:  []string{"Hand Distressed", "Garment Dyed", "Raglan Sleeve", "Vintage Appeal"},
	},
	{
		ID:       "s3",
		Name:     "Vintage Grey Sweat",
		Price:    95,
		Category: "Sweatshirts",
		Image:    "https://i.pinimg.com/736x/af/da/b4/afdab4e98e4c4120c3cee7b9cb34eb83.jpg",
		IsNew:    true,
		Details:  []string{"Heather Grey", "Bonded Hems", "Minimalist", "Structured Drape"},
	},
	{
		ID:       "s4",
		Name:     "Oversized Boxy Crew",
		Price:    100,
		Category: "Sweatshirts",
		Image:    "https://i.pinimg.com/736x/71/06/da/7106dad26406403158c68d56ddfd2824.jpg",
		Details:  []string{"Extra Oversized", "Heavy Cotton", "Ribbed Hem", "Street Staple"},
	},
	{
		ID:       "s5",
		Name:     "Washed Black Crew",
		Price:    115,
		Category: "Sweatshirts",
		Image:    "https://i.pinimg.com/1200x/f0/52/9f/f0529f8621cae44eec21227697def751.jpg",
		Details:  []string{"Faded Black", "Chest Logo", "Fleece Lined", "Regular Fit"},
	},
	{
		ID:       "t1",
		Name:     "Pleated Wide Trouser",
		Price:    220,
		Category: "Trousers",
		Image:    "https://i.pinimg.com/736x/66/8b/31/668b3177752ca9237d0d287d4c4a7366.jpg",
		IsNew:    true,
		Details:  []string{"Virgin Wool Blend", "Double Pleat", "Wide Leg", "Cropped Hem"},
	},
	{
		ID:       "t2",
		Name:     "Straight Leg Formal",
		Price:    190,
		Category: "Trousers",
		Image:    "https://i.pinimg.com/736x/5f/94/38/5f943862cdb7d1724428db077cb72092.jpg",
		Details:  []string{"Flowing Silhouette", "High Waisted", "Side Adjusters", "Premium Cotton"},
	},
	{
		ID:       "t3",
		Name:     "Relaxed Drape Pant",
		Price:    180,
		Category: "Trousers",
		Image:    "https://i.pinimg.com/1200x/c1/34/f8/c134f863c5dd6fde6587df2594787c4d.jpg",
		Details:  []string{"Sharp Crease", "Hidden Closure", "Belt Loops", "Formal Cut"},
	},
	{
		ID:       "t4",
		Name:     "Structure Wool Pant",
		Price:    210,
		Category: "Trousers",
		Image:    "https://i.pinimg.com/736x/05/99/20/0599201741daacb502898ddda2a28be7.jpg",
		Details:  []string{"Synthetic Blend", "Liquid Drape", "Elastic Waist", "Minimalist"},
	},
	{
		ID:       "t5",
		Name:     "Tailored Black Trouser",
		Price:    175,
		Category: "Trousers",
		Image:    "https://i.pinimg.com/1200x/7c/f3/63/7cf363bcfe681a0392181e2263db9822.jpg",
		Details:  []string{"Heavy Canvas", "Straight Fit", "Workwear Inspired", "Reinforced Knees"},
	},
	{
		ID:       "c1",
		Name:     "Technical Cargo Pant",
		Price:    210,
		Category: "Cargos",
		Image:    "https://i.pinimg.com/1200x/1f/a4/6c/1fa46ccbe3c3dfabb4820b6252222e49.jpg",
		IsNew:    true,
		Details:  []string{"Multiple Pockets", "Straps & Buckles", "Water Repellent", "Tapered Ankle"},
	},
	{
		ID:       "c2",
		Name:     "Utility Pocket Cargo",
		Price:    150,
		Category: "Cargos",
		Image:    "https://i.pinimg.com/1200x/ad/1a/08/ad1a0853320ca9f365a8eddc3e48057a.jpg",
		Details:  []string{"Ripstop Fabric", "Drawstring Cuff", "Relaxed Fit", "Military Green"},
	},
	{
		ID:       "c3",
		Name:     "Heavyweight Canvas Cargo",
		Price:    165,
		Category: "Cargos",
		Image:    "https://i.pinimg.com/1200x/3e/ea/b9/3eeab987f4d741e9d5163f39fcc1600f.jpg",
		Details:  []string{"Cotton Twill", "Velcro Pockets", "Baggy Fit", "Skate Style"},
	},
	{
		ID:       "c4",
		Name:     "Multi-Zip Tech Cargo",
		Price:    185,
		Category: "Cargos",
		Image:    "https://i.pinimg.com/1200x/c3/34/28/c33428398bb3306a4a8588ed57323b65.jpg",
		Details:  []string{"Lightweight Nylon", "Rustle Fabric", "Zip Pockets", "Sporty Look"},
	},
	{
		ID:       "p1",
		Name:     "Knit Polo Noir",
		Price:    120,
		Category: "Tops",
		Image:    "https://i.pinimg.com/1200x/38/35/01/3835010d966b594de31be7d6c01ce640.jpg",
		IsNew:    true,
		Details:  []string{"Merino Wool Blend", "Open Collar", "Ribbed Trims", "Slim Fit"},
	},
	{
		ID:       "p2",
		Name:     "Textured Weave Polo",
		Price:    95,
		Category: "Tops",
		Image:    "https://i.pinimg.com/736x/67/41/fd/6741fdd0e05b9d263df10649f72de779.jpg",
		Details:  []string{"Waffle Texture", "Breathable", "Classic Fit", "Neutral Tone"},
	},
	{
		ID:       "p3",
		Name:     "Quarter Zip Knit",
		Price:    110,
		Category: "Tops",
		Image:    "https://i.pinimg.com/1200x/78/68/ee/7868eedcea73b0d4d1f60b2a587c3f5d.jpg",
		Details:  []string{"Metal Zipper", "Cotton Pique", "Structured Collar", "Smart Casual"},
	},
	{
		ID:       "p4",
		Name:     "Mercerized Cotton Polo",
		Price:    140,
		Category: "Tops",
		Image:    "https://i.pinimg.com/736x/ae/ac/3f/aeac3f2ce9efe6626b89894a7e4c64a1.jpg",
		Details:  []string{"Silk-like Sheen", "Premium Cotton", "Buttonless Placket", "Luxury Feel"},
	},
	{
		ID:       "p5",
		Name:     "Vintage Striped Polo",
		Price:    85,
		Category: "Tops",
		Image:    "https://i.pinimg.com/736x/79/f3/8b/79f38bb27fd758227cb6dcaa7712f1d5.jpg",
		Details:  []string{"Retro Vertical Stripe", "Contrast Collar", "Boxy Fit", "Soft Wash"},
	},
	{
		ID:       "d1",
		Name:     "Vintage Wash Denim",
		Price:    250,
		Category: "Denim",
		Image:    "https://i.pinimg.com/1200x/d8/5e/5a/d85e5ae7768c713b057d05a0256b5787.jpg",
		IsNew:    true,
		Details:  []string{"14oz Japanese Denim", "Redline Selvedge", "Unwashed", "Stiff Handle"},
	},
	{
		ID:       "d2",
		Name:     "Distressed Stacked Jean",
		Price:    160,
		Category: "Denim",
		Image:    "https://i.pinimg.com/736x/a2/a3/40/a2a3408567559a9c087ee0e501a165cd.jpg",
		Details:  []string{"Stone Washed", "Whiskering Details", "Straight Leg", "Classic 5 Pocket"},
	},
	{
		ID:       "d3",
		Name:     "Carpenter Denim",
		Price:    175,
		Category: "Denim",
		Image:    "https://i.pinimg.com/736x/45/4f/3b/454f3b3eaad7d8695bf4ef0a37b8a615.jpg",
		Details:  []string{"Faded Black", "Knee Blowouts", "Skinny Stacked Fit", "Stretch Denim"},
	},
	{
		ID:       "d4",
		Name:     "Wide Leg Light Wash",
		Price:    145,
		Category: "Denim",
		Image:    "https://i.pinimg.com/1200x/58/d5/05/58d5050ef8e9b0c370b099b25fa9187a.jpg",
		Details:  []string{"Hammer Loop", "Utility Pockets", "Wide Fit", "Light Wash"},
	},
	{
		ID:       "d5",
		Name:     "Black Waxed Denim",
		Price:    155,
		Category: "Denim",
		Image:    "https://i.pinimg.com/736x/32/c5/cc/32c5ccc87b7f640ae12d5a40005c5557.jpg",
		Details:  []string{"Elongated Inseam", "Waxed Finish", "Ankle Stacking", "Rock Aesthetic"},
	},
	{
		ID:       "j1",
		Name:     "Distressed Leather Racer",
		Price:    650,
		Category: "Jackets",
		Image:    "https://i.pinimg.com/1200x/5a/99/f2/5a99f2ecbe0779c25362ed18d50198cc.jpg",
		IsNew:    true,
		Details:  []string{"Full Grain Leather", "Hand Distressed", "Cafe Racer Collar", "Heavy Zippers"},
	},
	{
		ID:       "j2",
		Name:     "Vintage MA-1 Bomber",
		Price:    280,
		Category: "Jackets",
		Image:    "https://i.pinimg.com/1200x/62/6e/7e/626e7ef3d0a1795f49e9d1feb5580c1c.jpg",
		Details:  []string{"Nylon Satin", "Orange Lining", "Oversized Puffy Fit", "Utility Arm Pocket"},
	},
	{
		ID:       "j3",
		Name:     "Varsity Letterman",
		Price:    320,
		Category: "Jackets",
		Image:    "https://i.pinimg.com/736x/9b/7b/91/9b7b91fbee196bc9ee5a68cac4b724a7.jpg",
		Details:  []string{"Wool Body", "Leather Sleeves", "Chenille Patches", "Boxy Cropped Fit"},
	},
	{
		ID:       "j4",
		Name:     "SST Track Jacket",
		Price:    110,
		Category: "Jackets",
		Image:    "https://i.pinimg.com/1200x/ce/98/1e/ce981ebf6373ce35979f306e1b1315f4.jpg",
		Details:  []string{"Retro Sportswear", "Tricot Fabric", "Side Stripes", "Stand Collar"},
	},
	{
		ID:       "j5",
		Name:     "Type III Trucker",
		Price:    180,
		Category: "Jackets",
		Image:    "https://i.pinimg.com/736x/a0/62/61/a06261223ef5374b9849ccb4de9635c4.jpg",
		Details:  []string{"Heavyweight Denim", "Sherpa Lining", "Copper Buttons", "Faded Indigo"},
	},
	{
		ID:       "j6",
		Name:     "Technical Shell",
		Price:    450,
		Category: "Jackets",
		Image:    "https://i.pinimg.com/736x/9a/46/7a/9a467a31cb765625babb47fedf0614c9.jpg",
		Details:  []string{"3-Layer Membrane", "Waterproof", "High Neck Hood", "Performance Gear"},
	},
	{
		ID:       "j7",
		Name:     "Workwear Jacket",
		Price:    195,
		Category: "Jackets",
		Image:    "https://i.pinimg.com/1200x/be/19/b4/be19b40a9061dcf07ea35ddeec7c0aa3.jpg",
		Details:  []string{"Heavy Canvas", "Corduroy Collar", "Quilted Lining", "Boxy Fit"},
	},
}

var collections = []domain.Collection{
	{
		ID:          "c1",
		Title:       "Swoosh Tech",
		Description: "The intersection of fleece innovation and modern silhouette.",
		Image:       "https://images.unsplash.com/photo-1556905055-8f358a7a47b2?q=80&w=800",
	},
	{
		ID:          "c2",
		Title:       "Three Stripes Archival",
		Description: "Reimagining the classics for the future of streetwear.",
		Image:       "https://images.unsplash.com/photo-1617137984095-74e4e5e3613f?q=80&w=800",
	},
}

var posts = []domain.Post{
	{
		ID:       "j1",
		Title:    "The Architecture of Grief",
		Date:     "NOV 03, 2024",
		Category: "Philosophy",
		Excerpt:  "How we translate the weight of loss into the silhouette of our heavyweight fleece. Every seam tells a story of reconstruction.",
		Image:    "https://images.unsplash.com/photo-1515462277126-2dd0c162007a?q=80&w=800",
	},
	{
		ID:       "j2",
		Title:    "Silence as a Weapon",
		Date:     "OCT 21, 2024",
		Category: "Process",
		Excerpt:  "In a world that screams for attention, we choose the whisper. Why our branding is invisible and our presence is undeniable.",
		Image:    "https://images.unsplash.com/photo-1505322022379-7c3353ee6291?q=80&w=800",
	},
	{
		ID:       "j3",
		Title:    "From the Concrete",
		Date:     "OCT 12, 2024",
		Category: "Origins",
		Excerpt:  "The struggle of the ascent. Documenting the sleepless nights and the relentless pursuit of the perfect heavy gsm fabric.",
		Image:    "https://images.unsplash.com/photo-1444703686981-a3abbc4d4fe3?q=80&w=800",
	},
	{
		ID:       "j4",
		Title:    "Armor for the Soul",
		Date:     "SEP 28, 2024",
		Category: "Design",
		Excerpt:  "Clothing is not just fabric; it is a psychological shield. Exploring the protective qualities of the Brutalist collection.",
		Image:    "https://images.unsplash.com/photo-1493612276216-9c5901955d43?q=80&w=800",
	},
}
