package catalog

import (
	"github.com/google/uuid"

	"tti-backend/internal/models"
)

// SeedCourses returns the training catalog inserted by the seed endpoint.
// Only the foundational course carries a module curriculum; the rest are
// in-person trainings sold through checkout.
func SeedCourses() []models.Course {
	return []models.Course{
		{
			ID:                  FoundationalCourseID,
			Title:               "ETT Foundational Course",
			Track:               "wellness",
			Level:               "prerequisite",
			Description:         "Essential foundation for all ETT training tracks",
			DetailedDescription: "This comprehensive foundational course introduces the core principles of Emotional Transformation Therapy. You'll learn the theoretical framework, basic techniques, and prepare for advanced training in either the Wellness or Clinical track.",
			Price:               25000.00,
			EquipmentFee:        0.0,
			Duration:            "2 days",
			Location:            "Mumbai, India",
			Schedule:            "March 15-16, 2025",
			Instructor:          "Dr. Priya Sharma",
			MaxParticipants:     25,
			Features: []string{
				"Introduction to ETT principles",
				"Understanding emotional patterns",
				"Basic intervention techniques",
				"Certificate of completion",
				"Access to online resources",
			},
		},
		{
			ID:                  uuid.MustParse("2c6a1b3d-4e5f-4a78-b912-c3d5e7f9a102"),
			Title:               "ETT Wellness Level 1",
			Track:               "wellness",
			Level:               "level1",
			Description:         "Emotional regulation & stress reduction with SRT chart and wands (MDEM)",
			DetailedDescription: "Level 1 Wellness training introduces the SRT (Spectral Resonance Therapy) chart and wands using the MDEM (Multi-Dimensional Energy Method). Learn to facilitate emotional regulation and stress reduction for personal and professional wellness applications.",
			Price:               45000.00,
			EquipmentFee:        15000.00,
			Duration:            "3-4 days",
			Location:            "Delhi, India",
			Schedule:            "April 5-8, 2025",
			Instructor:          "Dr. Anjali Mehta",
			MaxParticipants:     20,
			Features: []string{
				"SRT chart fundamentals",
				"MDEM wand techniques",
				"Emotional regulation protocols",
				"Stress reduction methods",
				"Practice sessions",
				"Equipment included",
			},
		},
		{
			ID:                  uuid.MustParse("2c6a1b3d-4e5f-4a78-b912-c3d5e7f9a103"),
			Title:               "ETT Wellness Level 2",
			Track:               "wellness",
			Level:               "level2",
			Description:         "Brain wave light stimulation and Google-PES protocols",
			DetailedDescription: "Advanced wellness training covering brain wave light stimulation techniques and Google-PES (Peripheral Energy Stimulation) protocols. Master sophisticated approaches to somatic healing and spiritual wellness pathways.",
			Price:               55000.00,
			EquipmentFee:        20000.00,
			Duration:            "3-4 days",
			Location:            "Bangalore, India",
			Schedule:            "May 10-13, 2025",
			Instructor:          "Dr. Vikram Patel",
			MaxParticipants:     15,
			Features: []string{
				"Brain wave stimulation",
				"Google-PES protocols",
				"Somatic healing techniques",
				"Spiritual wellness integration",
				"Advanced practice sessions",
				"Specialized equipment",
			},
		},
		{
			ID:                  uuid.MustParse("2c6a1b3d-4e5f-4a78-b912-c3d5e7f9a104"),
			Title:               "ETT Clinical Level 1",
			Track:               "clinical",
			Level:               "level1",
			Description:         "Core ETT techniques & attachment work for mental health professionals",
			DetailedDescription: "Comprehensive clinical training covering all wellness content plus advanced clinical protocols. Learn core ETT techniques, attachment work methodologies, and evidence-based approaches for licensed mental health practitioners.",
			Price:               65000.00,
			EquipmentFee:        15000.00,
			Duration:            "4 days",
			Location:            "Mumbai, India",
			Schedule:            "April 20-23, 2025",
			Instructor:          "Dr. Rajesh Kumar",
			MaxParticipants:     18,
			Features: []string{
				"All Wellness Level 1 content",
				"Clinical assessment protocols",
				"Attachment-based interventions",
				"Case conceptualization",
				"Supervised practice",
				"Clinical documentation",
			},
		},
		{
			ID:                  uuid.MustParse("2c6a1b3d-4e5f-4a78-b912-c3d5e7f9a105"),
			Title:               "ETT Clinical Level 2",
			Track:               "clinical",
			Level:               "level2",
			Description:         "Addiction, trauma, spirituality, and DSM-5 diagnostic integration",
			DetailedDescription: "Advanced clinical certification covering complex presentations including addiction, somatic conditions, trauma, spirituality/religion integration, and DSM-5 diagnostic frameworks. Includes monthly consultation calls and certification requirements.",
			Price:               85000.00,
			EquipmentFee:        25000.00,
			Duration:            "4 days",
			Location:            "Delhi, India",
			Schedule:            "June 15-18, 2025",
			Instructor:          "Dr. Sunita Reddy",
			MaxParticipants:     15,
			Features: []string{
				"Addiction treatment protocols",
				"Trauma-informed interventions",
				"Somatic condition management",
				"Spiritual integration approaches",
				"DSM-5 diagnostic integration",
				"Monthly consultation calls",
				"Certification pathway",
			},
		},
		{
			ID:                  uuid.MustParse("2c6a1b3d-4e5f-4a78-b912-c3d5e7f9a106"),
			Title:               "Trauma-Informed Hospitality Training",
			Track:               "wellness",
			Level:               "advanced",
			Description:         "Specialized training for hospitality staff and corporate teams",
			DetailedDescription: "Coming soon: A specialized program designed for hospitality industry professionals and corporate teams to understand and respond to trauma-informed practices in workplace settings.",
			Price:               35000.00,
			Duration:            "2 days",
			Location:            "Multiple Locations",
			Schedule:            "Coming Soon",
			Instructor:          "ETT Certified Trainer",
			MaxParticipants:     20,
			IsComingSoon:        true,
			Features: []string{
				"Understanding workplace trauma",
				"De-escalation techniques",
				"Self-care strategies",
				"Team support protocols",
			},
		},
		{
			ID:                  uuid.MustParse("2c6a1b3d-4e5f-4a78-b912-c3d5e7f9a107"),
			Title:               "Wellness Retreat Program",
			Track:               "wellness",
			Level:               "advanced",
			Description:         "Immersive wellness retreat experience at holistic centers",
			DetailedDescription: "Coming soon: An immersive retreat program combining ETT practices with holistic wellness approaches at certified retreat centers across India.",
			Price:               75000.00,
			Duration:            "5 days",
			Location:            "Rishikesh, India",
			Schedule:            "Coming Soon",
			Instructor:          "ETT Certified Trainer",
			MaxParticipants:     20,
			IsComingSoon:        true,
			Features: []string{
				"Immersive ETT experience",
				"Meditation & yoga integration",
				"Nature therapy",
				"Personal transformation journey",
			},
		},
		{
			ID:                  uuid.MustParse("2c6a1b3d-4e5f-4a78-b912-c3d5e7f9a108"),
			Title:               "Rehabilitation Support Program",
			Track:               "clinical",
			Level:               "advanced",
			Description:         "Specialized program for people on probation and rehabilitation",
			DetailedDescription: "Coming soon: A specialized rehabilitation program designed in compliance with requirements for addiction and rehabilitation centers, supporting individuals on probation.",
			Price:               45000.00,
			Duration:            "3 days",
			Location:            "Various Centers",
			Schedule:            "Coming Soon",
			Instructor:          "ETT Certified Trainer",
			MaxParticipants:     20,
			IsComingSoon:        true,
			Features: []string{
				"Compliance-focused curriculum",
				"Rehabilitation protocols",
				"Reintegration support",
				"Follow-up resources",
			},
		},
	}
}
