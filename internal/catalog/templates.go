package catalog

func defaultTemplates() map[string]Template {
	return map[string]Template{
		Relationships: {
			Title:         "Building Healthy Relationships",
			Description:   "Evidence-based strategies for improving communication and trust in relationships",
			EstimatedTime: "3-6 weeks",
			Steps: []Step{
				{
					Title:       "Practice Active Listening",
					Description: "Learn to truly hear and understand your partner's perspective",
					Duration:    "1 week",
					Activities: []string{
						"Set aside 15 minutes daily for uninterrupted conversation",
						"Practice reflecting back what you heard before responding",
						"Ask open-ended questions to understand deeper feelings",
					},
				},
				{
					Title:       "Improve Communication Skills",
					Description: "Develop healthy ways to express your needs and feelings",
					Duration:    "2 weeks",
					Activities: []string{
						`Use "I" statements instead of "you" statements`,
						"Practice expressing appreciation daily",
						"Learn to address conflicts constructively",
					},
				},
				{
					Title:       "Build Trust and Intimacy",
					Description: "Strengthen emotional connection and trust",
					Duration:    "2-3 weeks",
					Activities: []string{
						"Share one vulnerable thought or feeling each day",
						"Follow through on commitments consistently",
						"Create regular quality time together",
					},
				},
			},
			Resources: []Resource{
				{
					Type:        ResourceBook,
					Title:       "The Seven Principles for Making Marriage Work",
					Author:      "John Gottman",
					Description: "Research-based guide to building strong relationships",
				},
				{
					Type:     ResourceVideo,
					Title:    "Communication in Relationships",
					URL:      "https://example.com/communication-video",
					Duration: "15 minutes",
				},
			},
		},
		Family: {
			Title:         "Strengthening Family Bonds",
			Description:   "Strategies for managing family stress and improving relationships",
			EstimatedTime: "4-8 weeks",
			Steps: []Step{
				{
					Title:       "Establish Family Routines",
					Description: "Create predictable structures that reduce stress",
					Duration:    "1-2 weeks",
					Activities: []string{
						"Set regular meal times and family meetings",
						"Create bedtime routines for children",
						"Establish weekly family activities",
					},
				},
				{
					Title:       "Improve Family Communication",
					Description: "Foster open and respectful dialogue",
					Duration:    "2-3 weeks",
					Activities: []string{
						"Hold weekly family meetings",
						"Practice conflict resolution skills",
						"Encourage each family member to share daily highlights",
					},
				},
				{
					Title:       "Manage Financial Stress",
					Description: "Address money-related family tensions",
					Duration:    "2-3 weeks",
					Activities: []string{
						"Create a family budget together",
						"Discuss financial goals openly",
						"Find free or low-cost family activities",
					},
				},
			},
			Resources: []Resource{
				{
					Type:        ResourceBook,
					Title:       "The Whole-Brain Child",
					Author:      "Daniel Siegel",
					Description: "Understanding child development and family dynamics",
				},
			},
		},
		Work: {
			Title:         "Managing Work Stress and Burnout",
			Description:   "Comprehensive approach to workplace wellness and career balance",
			EstimatedTime: "4-6 weeks",
			Steps: []Step{
				{
					Title:       "Assess Your Work-Life Balance",
					Description: "Identify areas of imbalance and stress triggers",
					Duration:    "1 week",
					Activities: []string{
						"Track your daily activities and stress levels",
						"Identify peak stress times and situations",
						"Evaluate your current boundaries between work and personal life",
					},
				},
				{
					Title:       "Develop Stress Management Techniques",
					Description: "Learn practical tools for managing workplace stress",
					Duration:    "2 weeks",
					Activities: []string{
						"Practice deep breathing exercises during work breaks",
						"Use the Pomodoro Technique for better time management",
						"Learn to say no to non-essential tasks",
					},
				},
				{
					Title:       "Create Healthy Work Boundaries",
					Description: "Establish clear limits to protect your well-being",
					Duration:    "2-3 weeks",
					Activities: []string{
						"Set specific work hours and stick to them",
						"Create a dedicated workspace if working from home",
						"Develop an end-of-workday ritual",
					},
				},
			},
			Resources: []Resource{
				{
					Type:        ResourceBook,
					Title:       "Burnout: The Secret to Unlocking the Stress Cycle",
					Author:      "Emily Nagoski",
					Description: "Science-based approach to managing stress and preventing burnout",
				},
				{
					Type:     ResourceVideo,
					Title:    "Workplace Stress Management",
					URL:      "https://example.com/stress-management",
					Duration: "20 minutes",
				},
			},
		},
		Financial: {
			Title:         "Financial Wellness and Stress Relief",
			Description:   "Practical strategies for managing money-related anxiety",
			EstimatedTime: "6-8 weeks",
			Steps: []Step{
				{
					Title:       "Assess Your Financial Situation",
					Description: "Get a clear picture of your finances",
					Duration:    "1 week",
					Activities: []string{
						"List all income sources and expenses",
						"Calculate your net worth",
						"Identify areas of financial stress",
					},
				},
				{
					Title:       "Create a Budget and Emergency Fund",
					Description: "Build financial security and reduce anxiety",
					Duration:    "2-3 weeks",
					Activities: []string{
						"Use the 50/30/20 budgeting rule",
						"Start an emergency fund with small amounts",
						"Track expenses daily for awareness",
					},
				},
				{
					Title:       "Develop Long-term Financial Goals",
					Description: "Plan for future financial security",
					Duration:    "3-4 weeks",
					Activities: []string{
						"Set SMART financial goals",
						"Research investment options suitable for Kenya",
						"Consider additional income streams",
					},
				},
			},
			Resources: []Resource{
				{
					Type:        ResourceBook,
					Title:       "Your Money or Your Life",
					Author:      "Vicki Robin",
					Description: "Transform your relationship with money",
				},
			},
		},
		Personal: {
			Title:         "Personal Growth and Self-Esteem",
			Description:   "Building confidence and discovering your authentic self",
			EstimatedTime: "6-10 weeks",
			Steps: []Step{
				{
					Title:       "Self-Reflection and Awareness",
					Description: "Understand your values, strengths, and areas for growth",
					Duration:    "2 weeks",
					Activities: []string{
						"Complete a values assessment exercise",
						"Journal about your strengths and achievements",
						"Identify limiting beliefs about yourself",
					},
				},
				{
					Title:       "Build Self-Compassion",
					Description: "Learn to treat yourself with kindness",
					Duration:    "2-3 weeks",
					Activities: []string{
						"Practice self-compassion meditation",
						"Challenge negative self-talk",
						"Celebrate small wins daily",
					},
				},
				{
					Title:       "Set and Achieve Personal Goals",
					Description: "Create momentum through meaningful accomplishments",
					Duration:    "3-5 weeks",
					Activities: []string{
						"Set 3 achievable short-term goals",
						"Break goals into daily actions",
						"Track progress and adjust as needed",
					},
				},
			},
			Resources: []Resource{
				{
					Type:        ResourceBook,
					Title:       "Self-Compassion",
					Author:      "Kristin Neff",
					Description: "The proven power of being kind to yourself",
				},
			},
		},
		Social: {
			Title:         "Overcoming Social Anxiety and Building Connections",
			Description:   "Strategies for managing social pressure and building meaningful relationships",
			EstimatedTime: "4-8 weeks",
			Steps: []Step{
				{
					Title:       "Understand Social Anxiety",
					Description: "Recognize triggers and patterns",
					Duration:    "1 week",
					Activities: []string{
						"Keep a social anxiety journal",
						"Identify specific social situations that cause stress",
						"Learn about the fight-or-flight response",
					},
				},
				{
					Title:       "Practice Gradual Exposure",
					Description: "Slowly build confidence in social situations",
					Duration:    "3-4 weeks",
					Activities: []string{
						"Start with low-stakes social interactions",
						"Practice small talk with cashiers or neighbors",
						"Gradually increase social challenges",
					},
				},
				{
					Title:       "Build Authentic Connections",
					Description: "Focus on quality relationships over quantity",
					Duration:    "2-3 weeks",
					Activities: []string{
						"Join groups based on your interests",
						"Practice active listening in conversations",
						"Be vulnerable and share your authentic self",
					},
				},
			},
			Resources: []Resource{
				{
					Type:        ResourceBook,
					Title:       "Quiet: The Power of Introverts",
					Author:      "Susan Cain",
					Description: "Understanding and embracing your social style",
				},
			},
		},
		Health: {
			Title:         "Holistic Health and Lifestyle Wellness",
			Description:   "Comprehensive approach to physical and mental well-being",
			EstimatedTime: "8-12 weeks",
			Steps: []Step{
				{
					Title:       "Establish Healthy Sleep Habits",
					Description: "Improve sleep quality for better mental health",
					Duration:    "2-3 weeks",
					Activities: []string{
						"Create a consistent bedtime routine",
						"Limit screen time before bed",
						"Optimize your sleep environment",
					},
				},
				{
					Title:       "Develop Regular Exercise Routine",
					Description: "Use physical activity to boost mood and energy",
					Duration:    "3-4 weeks",
					Activities: []string{
						"Start with 15-minute daily walks",
						"Try different types of exercise to find what you enjoy",
						"Set realistic fitness goals",
					},
				},
				{
					Title:       "Improve Nutrition and Hydration",
					Description: "Fuel your body and mind properly",
					Duration:    "3-5 weeks",
					Activities: []string{
						"Plan balanced meals with local Kenyan foods",
						"Increase water intake gradually",
						"Reduce processed foods and sugar",
					},
				},
			},
			Resources: []Resource{
				{
					Type:        ResourceBook,
					Title:       "The Body Keeps the Score",
					Author:      "Bessel van der Kolk",
					Description: "Understanding the connection between body and mind",
				},
			},
		},
	}
}
