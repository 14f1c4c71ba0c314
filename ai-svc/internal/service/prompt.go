package service

import "fmt"

const systemPrompt = "You are a helpful assistant that generates realistic restaurant menu recommendations. Always respond with valid JSON only."

func BuildPrompt(restaurantName, menuType string) string {
	return fmt.Sprintf(`Generate 5-8 realistic dishes for %s restaurant's %s menu. For each dish, provide:
- A realistic dish name
- A detailed, appetizing description (2-3 sentences)
- An average rating between 3.5 and 5.0 (realistic distribution)
- Number of reviews (between 15-120)
- A brief review summary highlighting what customers like about the dish

Return the response as a JSON array with this exact structure:
[
  {
    "id": "unique_id",
    "name": "Dish Name",
    "description": "Detailed description of the dish",
    "averageRating": 4.2,
    "reviewCount": 87,
    "reviewSummary": "Summary of customer reviews"
  }
]

Make the dishes authentic and appropriate for the restaurant name and menu type. Ensure variety in cuisines, ratings, and review counts.`, restaurantName, menuType)
}
