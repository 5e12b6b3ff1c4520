package catalog

import "github.com/mirrorlake/guesswho/internal/domain"

// defaultRoster returns the standard board: 20 characters whose attribute
// vectors cover every enumerated value at least once.
func defaultRoster() []domain.Character {
	return []domain.Character{
		{
			ID:       "char_1",
			Name:     "Sarah",
			ImageURL: "https://images.unsplash.com/photo-1494790108755-2616b612d83c?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairBrown, HairLength: domain.HairLong,
				EyeColor: domain.EyesBlue, Age: domain.AgeYoung, SkinTone: domain.SkinLight,
				HasEarrings: true, Expression: domain.ExpressionSmiling,
			},
		},
		{
			ID:       "char_2",
			Name:     "Michael",
			ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairGray, HairLength: domain.HairShort,
				EyeColor: domain.EyesBrown, HasGlasses: true, HasFacialHair: true,
				Age: domain.AgeMiddleAged, SkinTone: domain.SkinLight, Expression: domain.ExpressionSerious,
			},
		},
		{
			ID:       "char_3",
			Name:     "Lily",
			ImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairBlack, HairLength: domain.HairLong,
				EyeColor: domain.EyesBrown, Age: domain.AgeYoung, SkinTone: domain.SkinMedium,
				Expression: domain.ExpressionNeutral,
			},
		},
		{
			ID:       "char_4",
			Name:     "Marcus",
			ImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairBlack, HairLength: domain.HairShort,
				EyeColor: domain.EyesBrown, Age: domain.AgeYoung, SkinTone: domain.SkinDark,
				Expression: domain.ExpressionSmiling,
			},
		},
		{
			ID:       "char_5",
			Name:     "Eleanor",
			ImageURL: "https://images.unsplash.com/photo-1544725176-7c40e5a71c5e?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairGray, HairLength: domain.HairShort,
				EyeColor: domain.EyesBlue, Age: domain.AgeElderly, SkinTone: domain.SkinLight,
				Expression: domain.ExpressionNeutral,
			},
		},
		{
			ID:       "char_6",
			Name:     "Tommy",
			ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairRed, HairLength: domain.HairShort,
				EyeColor: domain.EyesGreen, Age: domain.AgeYoung, SkinTone: domain.SkinLight,
				Expression: domain.ExpressionSmiling,
			},
		},
		{
			ID:       "char_7",
			Name:     "Zoe",
			ImageURL: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairOther, HairLength: domain.HairMedium,
				EyeColor: domain.EyesBrown, Age: domain.AgeYoung, SkinTone: domain.SkinLight,
				HasEarrings: true, Expression: domain.ExpressionSerious,
			},
		},
		{
			ID:       "char_8",
			Name:     "Bruno",
			ImageURL: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairBlack, HairLength: domain.HairBald,
				EyeColor: domain.EyesBrown, HasFacialHair: true, Age: domain.AgeMiddleAged,
				SkinTone: domain.SkinMedium, Expression: domain.ExpressionSerious,
			},
		},
		{
			ID:       "char_9",
			Name:     "Emma",
			ImageURL: "https://images.unsplash.com/photo-1489424731084-a5d8b219a5bb?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairBlonde, HairLength: domain.HairLong,
				EyeColor: domain.EyesGreen, Age: domain.AgeYoung, SkinTone: domain.SkinLight,
				Expression: domain.ExpressionSmiling,
			},
		},
		{
			ID:       "char_10",
			Name:     "Devon",
			ImageURL: "https://images.unsplash.com/photo-1517070208541-6ddc4d3efbcb?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairBlack, HairLength: domain.HairLong,
				EyeColor: domain.EyesBrown, Age: domain.AgeYoung, SkinTone: domain.SkinDark,
				Expression: domain.ExpressionSmiling,
			},
		},
		{
			ID:       "char_11",
			Name:     "Nova",
			ImageURL: "https://images.unsplash.com/photo-1504703395950-b89145a5425b?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairOther, HairLength: domain.HairShort,
				EyeColor: domain.EyesBlue, Age: domain.AgeYoung, SkinTone: domain.SkinLight,
				HasEarrings: true, Expression: domain.ExpressionNeutral,
			},
		},
		{
			ID:       "char_12",
			Name:     "Arthur",
			ImageURL: "https://images.unsplash.com/photo-1547425260-76bcadfb4f2c?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairWhite, HairLength: domain.HairMedium,
				EyeColor: domain.EyesBlue, HasFacialHair: true, Age: domain.AgeElderly,
				SkinTone: domain.SkinLight, Expression: domain.ExpressionNeutral,
			},
		},
		{
			ID:       "char_13",
			Name:     "Rosa",
			ImageURL: "https://images.unsplash.com/photo-1506277886164-e25aa3f4ef7f?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairBrown, HairLength: domain.HairMedium,
				EyeColor: domain.EyesBrown, Age: domain.AgeYoung, SkinTone: domain.SkinMedium,
				HasEarrings: true, Expression: domain.ExpressionSmiling,
			},
		},
		{
			ID:       "char_14",
			Name:     "Hassan",
			ImageURL: "https://images.unsplash.com/photo-1521119989659-a83eee488004?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairBlack, HairLength: domain.HairMedium,
				EyeColor: domain.EyesBrown, HasFacialHair: true, Age: domain.AgeYoung,
				SkinTone: domain.SkinMedium, Expression: domain.ExpressionSerious,
			},
		},
		{
			ID:       "char_15",
			Name:     "Maya",
			ImageURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairBrown, HairLength: domain.HairShort,
				EyeColor: domain.EyesBrown, HasGlasses: true, Age: domain.AgeMiddleAged,
				SkinTone: domain.SkinMedium, Expression: domain.ExpressionNeutral,
			},
		},
		{
			ID:       "char_16",
			Name:     "Alex",
			ImageURL: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairBrown, HairLength: domain.HairMedium,
				EyeColor: domain.EyesHazel, Age: domain.AgeYoung, SkinTone: domain.SkinLight,
				Expression: domain.ExpressionSmiling,
			},
		},
		{
			ID:       "char_17",
			Name:     "Scarlett",
			ImageURL: "https://images.unsplash.com/photo-1509967419530-da38b4704bc6?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairRed, HairLength: domain.HairLong,
				EyeColor: domain.EyesGreen, Age: domain.AgeYoung, SkinTone: domain.SkinLight,
				Expression: domain.ExpressionNeutral,
			},
		},
		{
			ID:       "char_18",
			Name:     "Victor",
			ImageURL: "https://images.unsplash.com/photo-1556157382-97eda2d62296?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairGray, HairLength: domain.HairShort,
				EyeColor: domain.EyesBlue, Age: domain.AgeMiddleAged, SkinTone: domain.SkinLight,
				Expression: domain.ExpressionSerious,
			},
		},
		{
			ID:       "char_19",
			Name:     "Keisha",
			ImageURL: "https://images.unsplash.com/photo-1524250502761-1ac6f2e30d43?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderFemale, HairColor: domain.HairBlack, HairLength: domain.HairLong,
				EyeColor: domain.EyesBrown, Age: domain.AgeYoung, SkinTone: domain.SkinDark,
				HasEarrings: true, Expression: domain.ExpressionSmiling,
			},
		},
		{
			ID:       "char_20",
			Name:     "Daniel",
			ImageURL: "https://images.unsplash.com/photo-1492562080023-ab3db95bfbce?w=400&h=400&fit=crop&crop=face",
			Attributes: domain.CharacterAttributes{
				Gender: domain.GenderMale, HairColor: domain.HairBrown, HairLength: domain.HairShort,
				EyeColor: domain.EyesBrown, HasFacialHair: true, Age: domain.AgeMiddleAged,
				SkinTone: domain.SkinLight, Expression: domain.ExpressionSmiling,
			},
		},
	}
}
