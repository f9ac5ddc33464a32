package interview

const interviewerSystemPrompt = `You are a professional recruitment interviewer, skilled at asking targeted interview questions to assess candidates' abilities and suitability.`

const evaluatorSystemPrompt = `You are a professional interview evaluation expert, capable of objectively assessing the quality of interview answers.`

const firstQuestionPrompt = `As a professional interviewer, please design an interview question for the following position:

[Position Information]
%s

[Job Seeker Information]
%s

Please ask a professional interview question that should:
1. Assess core abilities related to the position
2. Examine the job seeker's experience and skills
3. Have appropriate challenge level
4. Can be behavioral, technical, or situational questions

Please only return the question content, without additional explanations.`

const followUpQuestionPrompt = `As a professional interviewer, please continue the interview based on the following information:

[Position Information]
%s

[Job Seeker Information]
%s

[Previous Q&A]
Question: %s
Answer: %s

Based on the job seeker's previous answer, please ask a relevant follow-up question. The question should:
1. Deeply explore key points from the previous answer
2. Assess the job seeker's thinking depth and professional abilities
3. Be closely related to position requirements

Please only return the question content, without additional explanations.`

const evaluationPrompt = `Please evaluate the following interview answer:

[Position Information]
Position: %s
Company: %s
Requirements: %s

[Interview Question]
%s

[Job Seeker Answer]
%s

Please evaluate and provide scores (0-10 points) from the following dimensions:
1. Relevance and accuracy of the answer
2. Professional knowledge and skills demonstrated
3. Communication expression and logic
4. Match with position requirements

Please return evaluation results in the following JSON format:
{
    "score": score,
    "feedback": "Specific feedback and suggestions",
    "strengths": ["Strength1", "Strength2"],
    "improvements": ["Improvement suggestion1", "Improvement suggestion2"]
}`

const summaryPrompt = `Please generate a comprehensive summary report for the following interview:

[Position Information]
Position: %s
Company: %s
Requirements: %s

[Interview Q&A Records]
%s

Summarize the candidate's overall performance, key strengths, areas to
improve, and an overall hiring recommendation for this position.`
