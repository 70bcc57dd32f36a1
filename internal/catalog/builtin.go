package catalog

import "github.com/verte-zerg/tinysteps/internal/model"

func builtinRecords() []model.Record {
	return []model.Record{
		// Books
		{
			ID: "b1", Category: "Books", Kind: model.KindMilestone, Icon: "📖",
			Title: "Board Book Cuddles", ShortDescription: "Short, rhythmic read-alouds on your lap.", StartAgeMonths: 4,
			LongDescription: "Babies this age love the cadence of your voice more than the story itself. Sturdy board books with faces and bold shapes hold attention for a minute or two, and that is plenty.",
		},
		{
			ID: "b2", Category: "Books", Kind: model.KindMilestone, Icon: "👉",
			Title: "Point and Name", ShortDescription: "Pointing at pictures and waiting for you to name them.", StartAgeMonths: 12,
			Links: []model.Link{
				{Label: "Reading with toddlers", URL: "https://www.zerotothree.org/resource/getting-ready-for-reading/", Type: model.LinkExpert, Description: "How shared reading builds early language.", Author: "ZERO TO THREE"},
			},
		},
		{
			ID: "b3", Category: "Books", Kind: model.KindMilestone, Icon: "📚",
			Title: "Favourite Story on Repeat", ShortDescription: "Asking for the same book again and again.", StartAgeMonths: 24,
		},
		{
			ID: "b4", Category: "Books", Kind: model.KindMilestone, Icon: "🔤",
			Title: "Letter Recognition", ShortDescription: "Spotting familiar letters, often from their own name.", StartAgeMonths: 48,
		},
		{
			ID: "be1", Category: "Books", Kind: model.KindEssential, Icon: "🧸",
			Title: "Cloth and Board Book Set", ShortDescription: "Chewable pages that survive teething.", StartAgeMonths: 0, EndAgeMonths: model.Months(24),
		},
		{
			ID: "be2", Category: "Books", Kind: model.KindEssential, Icon: "📕",
			Title: "Picture Book Library Card", ShortDescription: "A rotating stack of new stories every week.", StartAgeMonths: 18,
		},

		// Food - Milestones
		{
			ID: "f1", Category: "Food", Kind: model.KindMilestone, Icon: "🍼",
			Title: "Exclusive Milk Feeding", ShortDescription: "Breastmilk or formula only.", StartAgeMonths: 0,
		},
		{
			ID: "f2", Category: "Food", Kind: model.KindMilestone, Icon: "🥣",
			Title: "First Purees", ShortDescription: "Single ingredient vegetable purees.", StartAgeMonths: 6,
			LongDescription: "Around six months most babies can sit with support and have lost the tongue-thrust reflex. Start with single-ingredient vegetables, one new food every few days, so reactions are easy to trace.",
			Links: []model.Link{
				{Label: "Starting solid foods", URL: "https://www.healthychildren.org/English/ages-stages/baby/feeding-nutrition/Pages/Starting-Solid-Foods.aspx", Type: model.LinkExpert, Description: "When and how to introduce solids.", Author: "American Academy of Pediatrics"},
				{Label: "First bites, filmed", URL: "https://www.youtube.com/results?search_query=baby+first+purees", Type: model.LinkVideo},
			},
		},
		{
			ID: "f3", Category: "Food", Kind: model.KindMilestone, Icon: "🥑",
			Title: "Soft Finger Foods", ShortDescription: "Small chunks of avocado, banana, etc.", StartAgeMonths: 8,
		},
		{
			ID: "f4", Category: "Food", Kind: model.KindMilestone, Icon: "🥛",
			Title: "Open Cup Drinking", ShortDescription: "Sipping water from a small open cup.", StartAgeMonths: 12,
		},

		// Food - Essentials
		{
			ID: "fe1", Category: "Food", Kind: model.KindEssential, Icon: "🪑",
			Title: "Ergonomic High Chair", ShortDescription: "Adjustable footrest for core stability.",
			LongDescription: "A high chair with a footrest is essential for safe swallowing. It provides the core stability babies need to focus on the complex task of chewing and moving food around their mouths.",
			StartAgeMonths: 5, EndAgeMonths: model.Months(36),
		},
		{
			ID: "fe2", Category: "Food", Kind: model.KindEssential, Icon: "🥄",
			Title: "Silicone Starter Spoons", ShortDescription: "Soft on gums and easy to grip.",
			StartAgeMonths: 4, EndAgeMonths: model.Months(12),
		},

		// Growth Jumps
		{
			ID: "g1", Category: "Growth Jumps", Icon: "🌱",
			Title: "Changing Sensations", ShortDescription: "Senses sharpen; more alert and more fussy.", StartAgeMonths: 1,
		},
		{
			ID: "g2", Category: "Growth Jumps", Icon: "🔁",
			Title: "Patterns", ShortDescription: "Discovering hands, feet and repeating shapes.", StartAgeMonths: 2,
		},
		{
			ID: "g3", Category: "Growth Jumps", Icon: "🌊",
			Title: "Smooth Transitions", ShortDescription: "Following moving objects and sounds that rise and fall.", StartAgeMonths: 3,
		},
		{
			ID: "g4", Category: "Growth Jumps", Icon: "🧩",
			Title: "Events", ShortDescription: "Understanding short sequences like a ball bouncing.", StartAgeMonths: 5,
			Links: []model.Link{
				{Label: "Fussy phases explained", URL: "https://www.instagram.com/explore/tags/wonderweeks/", Type: model.LinkInstagram, Author: "Parent community"},
			},
		},
		{
			ID: "g5", Category: "Growth Jumps", Icon: "🤝",
			Title: "Relationships", ShortDescription: "Noticing distance; separation anxiety often peaks.", StartAgeMonths: 9,
		},
		{
			ID: "g6", Category: "Growth Jumps", Icon: "🗂️",
			Title: "Categories", ShortDescription: "Grouping things: animals, foods, people.", StartAgeMonths: 14,
		},
		{
			ID: "g7", Category: "Growth Jumps", Icon: "🏃",
			Title: "Big Gross-Motor Leap", ShortDescription: "Running, climbing and jumping with both feet.", StartAgeMonths: 30,
		},
		{
			ID: "g8", Category: "Growth Jumps", Icon: "✏️",
			Title: "Fine-Motor Control", ShortDescription: "Holding a pencil with a tripod grip.", StartAgeMonths: 54,
		},
		{
			ID: "g9", Category: "Growth Jumps", Icon: "🎒",
			Title: "School Readiness", ShortDescription: "Following multi-step instructions in a group.", StartAgeMonths: 66,
		},

		// Sleep - Milestones
		{
			ID: "s1", Category: "Sleep", Kind: model.KindMilestone, Icon: "🌙",
			Title: "Circadian Rhythm Setup", ShortDescription: "Starting to distinguish day from night.", StartAgeMonths: 2,
		},
		{
			ID: "s2", Category: "Sleep", Kind: model.KindMilestone, Icon: "🛌",
			Title: "4-Month Regression", ShortDescription: "A major shift in sleep cycle architecture.", StartAgeMonths: 4,
			Links: []model.Link{
				{Label: "Safe sleep basics", URL: "https://safetosleep.nichd.nih.gov/", Type: model.LinkExpert, Description: "Safe to Sleep campaign guidance.", Author: "NICHD"},
				{Label: "Sleep cycles", URL: "https://www.sleepfoundation.org/baby-sleep/4-month-sleep-regression", Type: model.LinkWeb},
			},
		},
		{
			ID: "s3", Category: "Sleep", Kind: model.KindMilestone, Icon: "😴",
			Title: "Two Naps a Day", ShortDescription: "Dropping the late-afternoon catnap.", StartAgeMonths: 9,
		},
		{
			ID: "s4", Category: "Sleep", Kind: model.KindMilestone, Icon: "🛏️",
			Title: "Toddler Bed Move", ShortDescription: "Climbing out of the cot signals it is time.", StartAgeMonths: 30,
		},

		// Sleep - Essentials
		{
			ID: "se1", Category: "Sleep", Kind: model.KindEssential, Icon: "🧥",
			Title: "Weighted Sleep Sacks", ShortDescription: "Safety-certified comfort for deeper rest.",
			StartAgeMonths: 3, EndAgeMonths: model.Months(24),
		},
		{
			ID: "se2", Category: "Sleep", Kind: model.KindEssential, Icon: "🔊",
			Title: "White Noise Machine", ShortDescription: "Blocks out household sounds.",
			StartAgeMonths: 0, EndAgeMonths: model.Months(72),
		},

		// Toys - Milestones
		{
			ID: "t1", Category: "Toys", Kind: model.KindMilestone, Icon: "🎨",
			Title: "High Contrast Cards", ShortDescription: "Black and white patterns.", StartAgeMonths: 0,
		},
		{
			ID: "t2", Category: "Toys", Kind: model.KindMilestone, Icon: "🔔",
			Title: "Rattles & Grasping", ShortDescription: "Sound and reach development.", StartAgeMonths: 3,
		},
		{
			ID: "t3", Category: "Toys", Kind: model.KindMilestone, Icon: "🧱",
			Title: "Stacking Blocks", ShortDescription: "Building towers of two or three blocks.", StartAgeMonths: 15,
		},
		{
			ID: "t4", Category: "Toys", Kind: model.KindMilestone, Icon: "🎭",
			Title: "Pretend Play", ShortDescription: "Feeding dolls, pouring pretend tea.", StartAgeMonths: 24,
		},

		// Toys - Essentials
		{
			ID: "te1", Category: "Toys", Kind: model.KindEssential, Icon: "🧩",
			Title: "Montessori Play Kit", ShortDescription: "Age-appropriate wooden tools for learning.",
			StartAgeMonths: 0, EndAgeMonths: model.Months(60),
		},
		{
			ID: "te2", Category: "Toys", Kind: model.KindEssential, Icon: "🪀",
			Title: "Textured Sensory Balls", ShortDescription: "Easy to grip and great for tactile exploration.",
			StartAgeMonths: 2, EndAgeMonths: model.Months(12),
		},
	}
}
