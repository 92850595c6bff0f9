package catalog

import (
	"github.com/google/uuid"

	"tti-backend/internal/models"
)

// FoundationalCourseID is the fixed ID of the ETT Foundational Course, the one
// course that carries a gated module curriculum. Seeding and the catalog must
// agree on it, so it is a constant rather than generated at seed time.
var FoundationalCourseID = uuid.MustParse("0b4f8e2a-7c31-4c55-9a1d-2f6d8b9e4c01")

var foundationalModuleIDs = []uuid.UUID{
	uuid.MustParse("1a9c2d4e-0f3b-4a67-8c15-d2e4f6a8b001"),
	uuid.MustParse("1a9c2d4e-0f3b-4a67-8c15-d2e4f6a8b002"),
	uuid.MustParse("1a9c2d4e-0f3b-4a67-8c15-d2e4f6a8b003"),
	uuid.MustParse("1a9c2d4e-0f3b-4a67-8c15-d2e4f6a8b004"),
	uuid.MustParse("1a9c2d4e-0f3b-4a67-8c15-d2e4f6a8b005"),
	uuid.MustParse("1a9c2d4e-0f3b-4a67-8c15-d2e4f6a8b006"),
}

const foundationalPassingScore = 0.8

// FoundationalModules returns the six-module ETT Foundational curriculum.
func FoundationalModules() []models.Module {
	return []models.Module{
		{
			ID:       foundationalModuleIDs[0],
			CourseID: FoundationalCourseID,
			Number:   1,
			Week:     1,
			Title:    "Understanding Trauma",
			Content: models.ModuleContent{
				Objectives: []string{
					"Define trauma as a nervous system response rather than an event",
					"Distinguish acute, chronic and complex trauma",
				},
				ConceptExplanation: `Trauma is not defined by the event itself, but by how the nervous system responds to the event. When an individual experiences something overwhelming, the brain may fail to process the experience properly, leading to stored emotional and physiological responses.

There are three primary types of trauma:
• Acute Trauma: Resulting from a single distressing event (e.g., accident)
• Chronic Trauma: Repeated exposure (e.g., ongoing stress or abuse)
• Complex Trauma: Deep, layered trauma often from early life experiences`,
				InstructorScript: "Trauma is not what happens to you — it's what happens inside you as a result of what happened. Two people can go through the same event, and only one may develop trauma.",
				StudentActivities: []string{
					"Reflect on a stressful experience (non-triggering)",
					"Identify: What happened?",
					"Identify: What did you feel in your body?",
					"Identify: What thoughts came up?",
				},
				Exercises: []models.Exercise{
					{
						Name:         "Trauma Reflection Exercise",
						Type:         "self-reflection",
						Instructions: "Think of a mildly stressful experience (not traumatic). Write down what happened, what you felt in your body, and what thoughts arose.",
						Duration:     "10 minutes",
					},
				},
				ExpectedOutcome: "Students understand trauma as a nervous system response, not just an event.",
			},
			Assessment: models.Assessment{
				PassingScore: foundationalPassingScore,
				Questions: []models.Question{
					{
						Prompt: "What ultimately defines whether an experience becomes traumatic?",
						Options: []string{
							"The objective severity of the event",
							"How the nervous system responds to the event",
							"How long the event lasted",
							"Whether other people witnessed it",
						},
						CorrectIndex: 1,
						Explanation:  "Trauma is defined by the nervous system's response, not by the event itself.",
					},
					{
						Prompt: "Which of the following is NOT one of the three primary types of trauma?",
						Options: []string{
							"Acute trauma",
							"Chronic trauma",
							"Complex trauma",
							"Situational trauma",
						},
						CorrectIndex: 3,
						Explanation:  "The three primary types are acute, chronic and complex trauma.",
					},
					{
						Prompt: "Acute trauma results from:",
						Options: []string{
							"Repeated exposure to ongoing stress",
							"A single distressing event",
							"Layered early-life experiences",
							"Inherited family patterns",
						},
						CorrectIndex: 1,
						Explanation:  "Acute trauma follows a single distressing event such as an accident.",
					},
					{
						Prompt: "Two people go through the same overwhelming event. What does ETT teach about the outcome?",
						Options: []string{
							"Both will develop trauma of the same intensity",
							"Only one may develop trauma, because responses differ",
							"Neither will develop trauma if the event was short",
							"The younger person always develops trauma",
						},
						CorrectIndex: 1,
						Explanation:  "Responses are individual; the same event can leave one person traumatized and not the other.",
					},
					{
						Prompt: "Complex trauma is best described as:",
						Options: []string{
							"A reaction to a one-time accident",
							"Deep, layered trauma often rooted in early life experiences",
							"Stress that resolves within days",
							"A purely physical injury",
						},
						CorrectIndex: 1,
						Explanation:  "Complex trauma is deep and layered, typically originating in early life.",
					},
				},
			},
		},
		{
			ID:       foundationalModuleIDs[1],
			CourseID: FoundationalCourseID,
			Number:   2,
			Week:     1,
			Title:    "The Nervous System and Regulation",
			Content: models.ModuleContent{
				Objectives: []string{
					"Name the two primary nervous system modes",
					"Experience an immediate regulation technique",
				},
				ConceptExplanation: `The nervous system operates in two main modes:
• Sympathetic: Fight or Flight (activation)
• Parasympathetic: Rest and Digest (calm state)

When trauma occurs, the system may get stuck in activation or shutdown. Understanding nervous system regulation is key to emotional transformation.`,
				InstructorScript: "Your body is always trying to protect you. Even anxiety is not the enemy — it is a signal that your nervous system is responding to perceived threat.",
				StudentActivities: []string{
					"Practice grounding technique",
					"Observe physiological responses",
					"Notice emotional shifts during exercise",
				},
				Exercises: []models.Exercise{
					{
						Name:         "5-4-3-2-1 Grounding Practice",
						Type:         "experiential",
						Instructions: "Look around and name 5 things you see, identify 4 things you can touch, notice 3 sounds, observe 2 smells, take 1 deep breath",
						Duration:     "5 minutes",
						Outcome:      "Immediate nervous system regulation",
					},
				},
				ExpectedOutcome: "Students experience immediate nervous system regulation and understand the two primary nervous system modes.",
			},
			Assessment: models.Assessment{
				PassingScore: foundationalPassingScore,
				Questions: []models.Question{
					{
						Prompt: "Which nervous system mode is known as 'rest and digest'?",
						Options: []string{
							"Sympathetic",
							"Somatic",
							"Parasympathetic",
							"Enteric",
						},
						CorrectIndex: 2,
						Explanation:  "The parasympathetic mode is the calm, rest-and-digest state.",
					},
					{
						Prompt: "The sympathetic nervous system is responsible for:",
						Options: []string{
							"Fight-or-flight activation",
							"Digestion and recovery",
							"Long-term memory storage",
							"Voluntary movement only",
						},
						CorrectIndex: 0,
						Explanation:  "Sympathetic activation is the fight-or-flight response.",
					},
					{
						Prompt: "According to this module, what can happen to the nervous system after trauma?",
						Options: []string{
							"It always returns to baseline within hours",
							"It may get stuck in activation or shutdown",
							"It permanently loses the parasympathetic mode",
							"It becomes immune to future stress",
						},
						CorrectIndex: 1,
						Explanation:  "A traumatized system can get stuck in activation or shutdown.",
					},
					{
						Prompt: "How does this module frame anxiety?",
						Options: []string{
							"As a character flaw to overcome",
							"As a random malfunction with no meaning",
							"As proof of unresolved childhood trauma",
							"As a signal that the nervous system perceives threat",
						},
						CorrectIndex: 3,
						Explanation:  "Anxiety is a protective signal, not an enemy.",
					},
					{
						Prompt: "In the 5-4-3-2-1 grounding practice, what do you do last?",
						Options: []string{
							"Name five things you can see",
							"Take one deep breath",
							"Identify four things you can touch",
							"Notice three sounds",
						},
						CorrectIndex: 1,
						Explanation:  "The sequence ends with one deep breath.",
					},
				},
			},
		},
		{
			ID:       foundationalModuleIDs[2],
			CourseID: FoundationalCourseID,
			Number:   3,
			Week:     2,
			Title:    "Introduction to Emotional Transformation Therapy",
			Content: models.ModuleContent{
				Objectives: []string{
					"Explain how ETT engages the brain's emotional centers",
					"Observe how sensory input shifts emotional state",
				},
				ConceptExplanation: `Emotional Transformation Therapy (ETT) works by influencing the brain's emotional centers using light and sensory input to rapidly shift emotional states.

Key Idea: Emotion is not fixed — it can be altered through neurological pathways. ETT uses visual stimulation and specific techniques to access and transform stuck emotional patterns.`,
				InstructorScript: "Instead of trying to think your way out of emotions, ETT works directly with the brain's processing centers. We're engaging the neurology of emotion, not just the psychology.",
				StudentActivities: []string{
					"Observe emotional shifts during guided visualization",
					"Notice physical sensations with different colors/light",
					"Track emotional changes in real-time",
				},
				Exercises: []models.Exercise{
					{
						Name:         "Color Visualization Exercise",
						Type:         "guided_practice",
						Instructions: "Close your eyes and visualize different colors. Notice how each color affects your emotional state. Start with calming blue, then energizing yellow, then grounding green.",
						Duration:     "15 minutes",
					},
				},
				ExpectedOutcome: "Students experience how sensory input can directly influence emotional states.",
			},
			Assessment: models.Assessment{
				PassingScore: foundationalPassingScore,
				Questions: []models.Question{
					{
						Prompt: "What does ETT primarily use to shift emotional states?",
						Options: []string{
							"Medication protocols",
							"Light and sensory input",
							"Extended talk sessions",
							"Dietary changes",
						},
						CorrectIndex: 1,
						Explanation:  "ETT influences the brain's emotional centers with light and sensory input.",
					},
					{
						Prompt: "What is the key idea about emotion in this module?",
						Options: []string{
							"Emotion is fixed by adulthood",
							"Emotion only changes through willpower",
							"Emotion is not fixed and can be altered through neurological pathways",
							"Emotion is purely a cognitive construct",
						},
						CorrectIndex: 2,
						Explanation:  "Emotion can be altered through neurological pathways.",
					},
					{
						Prompt: "ETT is described as engaging the ________ of emotion.",
						Options: []string{
							"neurology",
							"philosophy",
							"sociology",
							"genetics",
						},
						CorrectIndex: 0,
						Explanation:  "The instructor script: engaging the neurology of emotion, not just the psychology.",
					},
					{
						Prompt: "In the color visualization exercise, which color comes first?",
						Options: []string{
							"Energizing yellow",
							"Calming blue",
							"Grounding green",
							"Warming red",
						},
						CorrectIndex: 1,
						Explanation:  "The sequence starts with calming blue.",
					},
					{
						Prompt: "Rather than 'thinking your way out' of emotions, ETT works by:",
						Options: []string{
							"Avoiding emotional triggers entirely",
							"Suppressing the emotion until it fades",
							"Journaling about the emotion daily",
							"Working directly with the brain's processing centers",
						},
						CorrectIndex: 3,
						Explanation:  "ETT works directly with the brain's emotional processing centers.",
					},
				},
			},
		},
		{
			ID:       foundationalModuleIDs[3],
			CourseID: FoundationalCourseID,
			Number:   4,
			Week:     2,
			Title:    "Building Emotional Awareness",
			Content: models.ModuleContent{
				Objectives: []string{
					"Identify and locate emotions in the body",
					"Describe emotions with somatic language",
				},
				ConceptExplanation: `Before transformation, awareness is required. Many individuals are disconnected from their emotional states. Emotional awareness involves:
• Identifying what you're feeling
• Locating the emotion in your body
• Describing the physical sensation
• Understanding the message the emotion carries`,
				InstructorScript: "You can't transform what you can't feel. Emotional awareness is the foundation of all emotional work. Your body holds wisdom that your mind may not yet understand.",
				StudentActivities: []string{
					"Practice emotion mapping",
					"Locate emotions in the body",
					"Describe physical sensations",
					"Build body-emotion connection",
				},
				Exercises: []models.Exercise{
					{
						Name:         "Emotion Mapping Exercise",
						Type:         "somatic_awareness",
						Instructions: "Ask yourself: 'What am I feeling right now?' Locate the emotion in your body. Describe it with texture words (tight, heavy, warm, buzzing, etc.). Notice any colors or images that arise.",
						Duration:     "10 minutes",
					},
					{
						Name:         "Body Scan Practice",
						Type:         "mindfulness",
						Instructions: "Starting from your feet, slowly scan up through your body. Notice any areas of tension, warmth, or sensation. Don't judge, just observe.",
						Duration:     "8 minutes",
					},
				},
				ExpectedOutcome: "Students build emotional awareness and body connection, developing the foundation for emotional transformation work.",
			},
			Assessment: models.Assessment{
				PassingScore: foundationalPassingScore,
				Questions: []models.Question{
					{
						Prompt: "According to this module, what must come before emotional transformation?",
						Options: []string{
							"Awareness",
							"Forgiveness",
							"Medication",
							"Isolation",
						},
						CorrectIndex: 0,
						Explanation:  "Before transformation, awareness is required.",
					},
					{
						Prompt: "Which of these is part of emotional awareness as defined here?",
						Options: []string{
							"Ignoring uncomfortable sensations",
							"Locating the emotion in your body",
							"Ranking emotions as good or bad",
							"Replacing emotions with positive thoughts",
						},
						CorrectIndex: 1,
						Explanation:  "Awareness includes identifying, locating, describing and understanding the emotion.",
					},
					{
						Prompt: "The instructor script says: 'You can't transform what you can't ____.'",
						Options: []string{
							"name",
							"remember",
							"feel",
							"explain",
						},
						CorrectIndex: 2,
						Explanation:  "Feeling the emotion is the prerequisite to transforming it.",
					},
					{
						Prompt: "In the emotion mapping exercise, how are sensations described?",
						Options: []string{
							"With diagnostic labels",
							"With texture words like tight, heavy, warm, buzzing",
							"With numeric codes",
							"In writing only, never aloud",
						},
						CorrectIndex: 1,
						Explanation:  "Texture words connect physical sensation to emotion.",
					},
					{
						Prompt: "Where does the body scan practice begin?",
						Options: []string{
							"At the head",
							"At the hands",
							"At the chest",
							"At the feet",
						},
						CorrectIndex: 3,
						Explanation:  "The scan starts from the feet and moves upward.",
					},
				},
			},
		},
		{
			ID:       foundationalModuleIDs[4],
			CourseID: FoundationalCourseID,
			Number:   5,
			Week:     3,
			Title:    "Multi-Dimensional Eye Movement",
			Content: models.ModuleContent{
				Objectives: []string{
					"Describe how eye movements engage emotional processing",
					"Practice basic MDEM with a mild memory",
				},
				ConceptExplanation: `Multi-Dimensional Eye Movement (MDEM) helps process stuck emotional patterns by engaging neural pathways. Different eye positions access different emotional memories and states.

The technique combines:
• Specific eye movement patterns
• Bilateral brain stimulation
• Emotional targeting
• Real-time processing`,
				InstructorScript: "Your eyes are connected directly to your brain's emotional processing centers. By guiding your eye movements, we can access and process emotional material that's been stuck.",
				StudentActivities: []string{
					"Follow guided eye movement patterns",
					"Recall mild emotional memory while moving eyes",
					"Observe emotional shifts in real-time",
					"Practice bilateral stimulation",
				},
				Exercises: []models.Exercise{
					{
						Name:         "Basic MDEM Practice",
						Type:         "guided_movement",
						Instructions: "Think of a mildly uncomfortable memory (not traumatic). Follow the instructor's finger as it moves slowly left to right. Notice any shifts in how the memory feels.",
						Duration:     "12 minutes",
						Outcome:      "Students experience real-time emotional processing",
					},
				},
				ExpectedOutcome: "Students experience how eye movements can facilitate emotional processing and reduce emotional intensity.",
			},
			Assessment: models.Assessment{
				PassingScore: foundationalPassingScore,
				Questions: []models.Question{
					{
						Prompt: "What does MDEM stand for?",
						Options: []string{
							"Mental Development and Emotional Mapping",
							"Multi-Dimensional Eye Movement",
							"Mindful Daily Emotion Management",
							"Motor-Driven Emotional Modulation",
						},
						CorrectIndex: 1,
						Explanation:  "MDEM is Multi-Dimensional Eye Movement.",
					},
					{
						Prompt: "According to this module, different eye positions:",
						Options: []string{
							"Access different emotional memories and states",
							"Change visual acuity permanently",
							"Have no relationship to emotion",
							"Only matter during sleep",
						},
						CorrectIndex: 0,
						Explanation:  "Eye positions access different emotional memories and states.",
					},
					{
						Prompt: "Which of these is NOT listed as part of the MDEM technique?",
						Options: []string{
							"Specific eye movement patterns",
							"Bilateral brain stimulation",
							"Emotional targeting",
							"Hypnotic suggestion",
						},
						CorrectIndex: 3,
						Explanation:  "The technique combines eye patterns, bilateral stimulation, targeting and real-time processing.",
					},
					{
						Prompt: "What kind of memory is used in the basic MDEM practice?",
						Options: []string{
							"The most traumatic memory available",
							"A recent happy memory",
							"A mildly uncomfortable, non-traumatic memory",
							"No memory at all",
						},
						CorrectIndex: 2,
						Explanation:  "Practice uses a mildly uncomfortable memory, never a traumatic one.",
					},
					{
						Prompt: "The eyes are described as connected directly to:",
						Options: []string{
							"The spinal reflex arc",
							"The brain's emotional processing centers",
							"The digestive system",
							"The auditory cortex",
						},
						CorrectIndex: 1,
						Explanation:  "Guided eye movement reaches the brain's emotional processing centers.",
					},
				},
			},
		},
		{
			ID:       foundationalModuleIDs[5],
			CourseID: FoundationalCourseID,
			Number:   6,
			Week:     3,
			Title:    "The Stress Response Technique",
			Content: models.ModuleContent{
				Objectives: []string{
					"Apply the structured SRT process to a mild emotion",
					"Track emotional intensity before and after regulation",
				},
				ConceptExplanation: `Stress Response Technique (SRT) uses structured mapping of emotional states to guide intervention. Rather than suppressing emotion, we learn to work with it and redirect it.

The process involves:
• Identifying emotional intensity (1-10 scale)
• Applying breathing regulation
• Introducing visual/light stimulus
• Tracking emotional shift`,
				InstructorScript: "Emotions are energy in motion. When we resist them, they get stuck. When we work with them skillfully, they can transform naturally.",
				StudentActivities: []string{
					"Rate emotional intensity",
					"Apply breathing techniques",
					"Track emotional changes",
					"Practice with partners",
				},
				Exercises: []models.Exercise{
					{
						Name:         "SRT Partner Practice",
						Type:         "paired_exercise",
						Instructions: "Work in pairs. One person acts as guide, one as participant. Guide: lead your partner through identifying an emotion, rating it 1-10, applying slow breathing, and checking for shifts. Switch roles.",
						Duration:     "20 minutes (10 min each)",
					},
					{
						Name:         "Emotional Intensity Tracking",
						Type:         "self_assessment",
						Instructions: "Choose a current mild emotion. Rate it 1-10. Apply 3 minutes of slow breathing. Re-rate the emotion. Notice any changes.",
						Duration:     "8 minutes",
					},
				},
				ExpectedOutcome: "Students learn structured approach to working with emotions and experience emotional regulation techniques.",
			},
			Assessment: models.Assessment{
				PassingScore: foundationalPassingScore,
				Questions: []models.Question{
					{
						Prompt: "How does SRT approach emotion?",
						Options: []string{
							"By suppressing it until it passes",
							"By analyzing its childhood origin",
							"By working with it and redirecting it",
							"By distracting attention away from it",
						},
						CorrectIndex: 2,
						Explanation:  "SRT works with emotion rather than suppressing it.",
					},
					{
						Prompt: "What scale is used to identify emotional intensity in SRT?",
						Options: []string{
							"A percentage from 0 to 100",
							"A 1-10 scale",
							"A color wheel",
							"A five-star rating",
						},
						CorrectIndex: 1,
						Explanation:  "Intensity is rated on a 1-10 scale before and after intervention.",
					},
					{
						Prompt: "The instructor script describes emotions as:",
						Options: []string{
							"Fixed personality traits",
							"Energy in motion",
							"Chemical accidents",
							"Learned social performances",
						},
						CorrectIndex: 1,
						Explanation:  "'Emotions are energy in motion' — resisting them makes them stuck.",
					},
					{
						Prompt: "In the SRT partner practice, what happens after the first round?",
						Options: []string{
							"Partners switch roles",
							"The guide writes a report",
							"The session ends",
							"A third person joins",
						},
						CorrectIndex: 0,
						Explanation:  "Guide and participant switch so both practice each role.",
					},
					{
						Prompt: "In the intensity tracking exercise, how long is the slow-breathing phase?",
						Options: []string{
							"30 seconds",
							"1 minute",
							"3 minutes",
							"10 minutes",
						},
						CorrectIndex: 2,
						Explanation:  "Three minutes of slow breathing, then re-rate the emotion.",
					},
				},
			},
		},
	}
}
