package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mirrorlake/guesswho/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client against any OpenAI-compatible chat
// completion endpoint. The default deployment points it at x.ai.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client for the given endpoint and model.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// complete performs a JSON-mode chat completion and unmarshals the reply into out.
func (c *OpenAIClient) complete(ctx context.Context, system, user string, temperature float32, out interface{}) error {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: temperature,
	})
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("chat completion returned no choices")
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("parse completion %q: %w", resp.Choices[0].Message.Content, err)
	}
	return nil
}

// AnswerQuestion answers a yes/no question about the AI's hidden character.
func (c *OpenAIClient) AnswerQuestion(ctx context.Context, question string, attrs domain.CharacterAttributes) (AnswerResult, error) {
	attrsJSON, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return AnswerResult{}, fmt.Errorf("marshal attributes: %w", err)
	}

	system := "You are an expert Guess Who game player. Always respond with valid JSON containing 'answer' (yes/no) and 'reasoning' fields."
	user := fmt.Sprintf(`You are playing Guess Who. A player is asking about a character with these attributes:

Character Attributes:
%s

Player's Question: %q

You must answer ONLY with "yes" or "no" based on whether the question is true for this character. Also provide brief reasoning.

Respond with JSON in this exact format:
{
  "answer": "yes" or "no",
  "reasoning": "Brief explanation of why this answer is correct"
}`, attrsJSON, question)

	var raw struct {
		Answer    string `json:"answer"`
		Reasoning string `json:"reasoning"`
	}
	if err := c.complete(ctx, system, user, 0.1, &raw); err != nil {
		return AnswerResult{}, err
	}

	result := AnswerResult{Answer: AnswerNo, Reasoning: raw.Reasoning}
	if strings.EqualFold(raw.Answer, string(AnswerYes)) {
		result.Answer = AnswerYes
	}
	if result.Reasoning == "" {
		result.Reasoning = "Based on character attributes"
	}
	return result, nil
}

// GenerateQuestion proposes the AI's next question.
func (c *OpenAIClient) GenerateQuestion(ctx context.Context, remaining []domain.Character, history []domain.HistoryEntry) (QuestionResult, error) {
	var previous []string
	for _, e := range history {
		if e.Kind.Question() {
			previous = append(previous, e.Content)
		}
	}
	previousBlock := "None"
	if len(previous) > 0 {
		previousBlock = strings.Join(previous, "\n")
	}

	system := "You are a strategic Guess Who AI player. Generate questions that optimally eliminate characters. Always respond with valid JSON."
	user := fmt.Sprintf(`You are an AI playing Guess Who. You need to ask a strategic question to narrow down the remaining characters.

Remaining Characters (%d):
%s

Previous Questions Asked:
%s

Generate a strategic yes/no question that will best eliminate characters and help you win. Avoid asking questions that have already been asked. Focus on attributes that will split the remaining characters roughly in half.

Respond with JSON in this exact format:
{
  "question": "Your strategic question here",
  "reasoning": "Why this question is strategically optimal"
}`, len(remaining), describeCharacters(remaining), previousBlock)

	var result QuestionResult
	if err := c.complete(ctx, system, user, 0.3, &result); err != nil {
		return QuestionResult{}, err
	}
	if result.Question == "" {
		return QuestionResult{}, fmt.Errorf("completion returned empty question")
	}
	if result.Reasoning == "" {
		result.Reasoning = "Strategic question to eliminate characters"
	}
	return result, nil
}

// ProcessResponse infers eliminations from the human's yes/no answer.
// The model may reference characters by name or ID; callers resolve them
// against the roster.
func (c *OpenAIClient) ProcessResponse(ctx context.Context, all []domain.Character, question, response string, history []domain.HistoryEntry) (EliminationResult, error) {
	var lines []string
	for _, e := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Kind, e.Content))
	}

	user := fmt.Sprintf(`You are playing Guess Who and just asked: %q

The player responded: %q

Based on this response, which characters should you eliminate from your board?

Available characters:
%s

Game history:
%s

Think step by step:
1. What does the player's %q response tell you about their character?
2. Which characters can you now eliminate based on this information?
3. What is your reasoning?

Respond with JSON:
{
  "eliminatedCharacters": ["character names to eliminate"],
  "reasoning": "why you eliminated these characters"
}`, question, response, describeCharacters(all), strings.Join(lines, "\n"), response)

	var result EliminationResult
	if err := c.complete(ctx, "", user, 0.3, &result); err != nil {
		return EliminationResult{}, err
	}
	if result.Reasoning == "" {
		result.Reasoning = "AI processed your response"
	}
	return result, nil
}

// MakeGuess picks the character the AI believes the human holds.
func (c *OpenAIClient) MakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry) (GuessResult, error) {
	system := "You are a strategic Guess Who AI player making a final guess. Analyze conversation history carefully and make the most logical choice. Always respond with valid JSON."
	user := fmt.Sprintf(`You are an AI playing Guess Who. Based on the conversation history, you need to make a final guess about the player's character.

Available Characters:
%s

Conversation History:
%s

Based on the player's answers to your questions, analyze which character best matches their responses. Make your best guess!

Respond with JSON in this exact format:
{
  "guessedCharacterId": "the character ID you're guessing",
  "characterName": "the character name",
  "reasoning": "Detailed explanation of why you chose this character based on the conversation"
}`, describeCharactersWithIDs(all), conversationContext(history))

	var result GuessResult
	if err := c.complete(ctx, system, user, 0.2, &result); err != nil {
		return GuessResult{}, err
	}
	return result, nil
}

// ShouldMakeGuess asks whether the AI has enough information to guess.
func (c *OpenAIClient) ShouldMakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry, turnCount int) (ShouldGuessResult, error) {
	system := "You are a strategic AI analyzing when to make a final guess in Guess Who. Be strategic about timing. Always respond with valid JSON."
	user := fmt.Sprintf(`You are an AI playing Guess Who. Analyze the conversation to determine if you have enough information to make a confident guess about the player's character.

Available Characters (%d total):
%s

Conversation History (%d turns):
%s

Based on the player's responses, do you have enough information to make a confident guess? Consider:
- How many characters have been eliminated based on responses
- Whether you have a clear frontrunner character
- Strategic timing (not too early, not too late)

Respond with JSON in this exact format:
{
  "shouldGuess": true or false,
  "reasoning": "Detailed explanation of your decision",
  "confidence": number from 0-100 indicating your confidence level
}`, len(all), describeCharacters(all), turnCount, conversationContext(history))

	var result ShouldGuessResult
	if err := c.complete(ctx, system, user, 0.3, &result); err != nil {
		return ShouldGuessResult{}, err
	}
	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 100 {
		result.Confidence = 100
	}
	if result.Reasoning == "" {
		result.Reasoning = "Strategic timing analysis"
	}
	return result, nil
}

func describeCharacters(characters []domain.Character) string {
	var b strings.Builder
	for _, ch := range characters {
		attrs, _ := json.Marshal(ch.Attributes)
		fmt.Fprintf(&b, "%s: %s\n", ch.Name, attrs)
	}
	return strings.TrimRight(b.String(), "\n")
}

func describeCharactersWithIDs(characters []domain.Character) string {
	var b strings.Builder
	for _, ch := range characters {
		attrs, _ := json.Marshal(ch.Attributes)
		fmt.Fprintf(&b, "%s (ID: %s): %s\n", ch.Name, ch.ID, attrs)
	}
	return strings.TrimRight(b.String(), "\n")
}

// conversationContext pairs the AI's questions with the human's responses in
// the order they were asked.
func conversationContext(history []domain.HistoryEntry) string {
	var questions, responses []string
	for _, e := range history {
		switch e.Kind {
		case domain.EntryAIQuestion:
			questions = append(questions, e.Content)
		case domain.EntryHumanResponse:
			responses = append(responses, e.Content)
		}
	}
	if len(questions) == 0 {
		return "No conversation yet"
	}

	var b strings.Builder
	for i, q := range questions {
		response := "no response"
		if i < len(responses) {
			response = responses[i]
		}
		fmt.Fprintf(&b, "AI asked: %q - Player answered: %q\n", q, response)
	}
	return strings.TrimRight(b.String(), "\n")
}
