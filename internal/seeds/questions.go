// Package seeds holds the static question bank loaded by scripts/seed_questions.go.
package seeds

import "ai-placement-tracker/internal/models"

func TheoryQuestions() []models.TheoryQuestion {
	return []models.TheoryQuestion{
		{
			Subject:      "Operating Systems",
			QuestionText: "Explain the concept of Virtual Memory and its benefits.",
			IdealAnswer:  "Virtual memory is a memory management technique that uses hardware and software to allow a computer to compensate for physical memory shortages by temporarily transferring data from random access memory (RAM) to disk storage.",
		},
		{
			Subject:      "Operating Systems",
			QuestionText: "What is a Deadlock and what are the four necessary conditions for it to occur?",
			IdealAnswer:  "A deadlock is a situation where a set of processes are blocked because each process is holding a resource and waiting for another resource held by some other process. Conditions: Mutual Exclusion, Hold and Wait, No Preemption, and Circular Wait.",
		},
		{
			Subject:      "Database Management",
			QuestionText: "What is the difference between INNER JOIN and LEFT JOIN?",
			IdealAnswer:  "INNER JOIN returns records that have matching values in both tables. LEFT JOIN returns all records from the left table, and the matched records from the right table; if no match, it returns NULL for the right side.",
		},
		{
			Subject:      "Networking",
			QuestionText: "Explain the 7 layers of the OSI Model.",
			IdealAnswer:  "The 7 layers are: Physical, Data Link, Network, Transport, Session, Presentation, and Application. It is a conceptual framework used to understand network interactions.",
		},
		{
			Subject:      "Object-Oriented Programming",
			QuestionText: "Explain the four pillars of OOP.",
			IdealAnswer:  "The four pillars are Encapsulation (hiding data), Abstraction (hiding complexity), Inheritance (reusing code), and Polymorphism (multiple forms of a function).",
		},
	}
}

func CodingQuestions() []models.CodingQuestion {
	return []models.CodingQuestion{
		{
			Title:          "Two Sum",
			Description:    "Write a function solution(nums, target) that returns indices of the two numbers such that they add up to target. Assume exactly one solution exists.",
			InitialCode:    "def solution(nums, target):\n    # Example: nums=[2,7,11,15], target=9 -> [0,1]\n    seen = {}\n    for i, num in enumerate(nums):\n        diff = target - num\n        if diff in seen:\n            return [seen[diff], i]\n        seen[num] = i\n\nprint(solution([2, 7, 11, 15], 9))",
			TestCaseInput:  "[2, 7, 11, 15], 9",
			ExpectedOutput: "[0, 1]",
		},
		{
			Title:          "Check Palindrome",
			Description:    "Write a function solution(s) that returns True if a string is a palindrome, and False otherwise.",
			InitialCode:    "def solution(s):\n    # Your code here\n    return s == s[::-1]\n\nprint(solution('radar'))",
			TestCaseInput:  "'radar'",
			ExpectedOutput: "True",
		},
		{
			Title:          "Find Maximum",
			Description:    "Write a function solution(arr) that returns the largest number in a list.",
			InitialCode:    "def solution(arr):\n    return max(arr)\n\nprint(solution([1, 5, 3, 9, 2]))",
			TestCaseInput:  "[1, 5, 3, 9, 2]",
			ExpectedOutput: "9",
		},
		{
			Title:          "Factorial",
			Description:    "Write a recursive function solution(n) to find the factorial of a number.",
			InitialCode:    "def solution(n):\n    if n == 0: return 1\n    return n * solution(n-1)\n\nprint(solution(5))",
			TestCaseInput:  "5",
			ExpectedOutput: "120",
		},
	}
}
